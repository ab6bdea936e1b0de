package onepif

import "PifKeeper/internal/archive"

// AttachmentsDirName - каталог вложений внутри экспорта.
const AttachmentsDirName = "attachments"

// AttachmentMap: uuid записи → имя файла → содержимое.
type AttachmentMap map[string]map[string][]byte

// FindAttachments ищет каталог attachments и собирает файлы из его подкаталогов,
// названных по uuid записей. Отсутствие или неверная вложенность дают пустой результат.
func FindAttachments(dir archive.Directory) AttachmentMap {
	res := AttachmentMap{}
	node, ok := dir[AttachmentsDirName].(archive.Directory)
	if !ok {
		return res
	}
	for recordID, child := range node {
		switch c := child.(type) {
		case archive.Directory:
			res[recordID] = extractAttachment(c)
		case archive.Leaf:
			// файл прямо в attachments не привязан к записи
		}
	}
	return res
}

func extractAttachment(dir archive.Directory) map[string][]byte {
	files := map[string][]byte{}
	for filename, e := range dir {
		switch v := e.(type) {
		case archive.Leaf:
			files[filename] = []byte(v)
		case archive.Directory:
			// вложенные каталоги игнорируются
		}
	}
	return files
}
