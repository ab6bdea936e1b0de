package onepif

import (
	"errors"
	"fmt"
)

// ErrCouldNotConvertStringToData - структурная ошибка: текст не декодируется,
// отсутствует файл .1pif или одна из записей не является корректным JSON.
var ErrCouldNotConvertStringToData = errors.New("could not convert string to data")

// UnknownRecordTypeError возвращается в строгом режиме для имени типа,
// которого нет в таксономии.
type UnknownRecordTypeError struct {
	TypeName string
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("unknown record type %q", e.TypeName)
}
