package view

// DecryptedEntry - DTO для отображения записи в CLI с расшифрованными полями.
type DecryptedEntry struct {
	ID         string
	Group      string
	Title      string
	Username   string
	Password   string
	URL        string
	Email      string
	Notes      string
	Tags       string
	CreatedAt  int64
	ModifiedAt int64

	CustomFields []Field
	Attachments  []AttachmentInfo
}

// Field - расшифрованное пользовательское поле.
type Field struct {
	Name      string
	Value     string
	Protected bool
}

// AttachmentInfo - метаданные вложения без содержимого.
type AttachmentInfo struct {
	FileName string
	Size     int64
	Digest   string
}
