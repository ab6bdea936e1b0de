package model

// Import - одна выполненная конвертация архива в локальной БД.
type Import struct {
	ID        string
	Source    string // путь к исходному файлу/каталогу
	CreatedAt int64
	Groups    int
	Entries   int
}

// Group - группа дерева хранилища. ParentID пуст у эффективного корня.
type Group struct {
	ID       string
	ImportID string
	ParentID string
	Title    string
	Icon     int
	Position int
}

// Entry - запись хранилища; секретные поля хранятся зашифрованными.
type Entry struct {
	ID             string
	ImportID       string
	GroupID        string
	GroupTitle     string // заполняется при чтении
	Title          string
	Icon           int
	Username       string
	URL            string
	Email          string
	Notes          string
	Tags           string // через запятую
	CreatedAt      int64
	ModifiedAt     int64
	Position       int
	Seq            int    // порядковый номер в обходе дерева импорта
	PasswordCipher []byte // шифртекст пароля
	PasswordNonce  []byte // nonce для пароля

	CustomFields []CustomField
	Attachments  []Attachment
}

// CustomField - пользовательское поле; защищённые значения лежат в ValueCipher.
type CustomField struct {
	Name        string
	Value       string
	ValueCipher []byte
	ValueNonce  []byte
	Protected   bool
}

// Attachment - зашифрованное содержимое вложения.
type Attachment struct {
	FileName string
	Size     int64
	Digest   string
	Cipher   []byte
	Nonce    []byte
}
