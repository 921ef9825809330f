package protocol

import (
	"fmt"

	"github.com/arloliu/lineproto/errs"
)

// ValidateName checks a candidate table, symbol or column name against the
// protocol's reserved-character set.
//
// A name must be non-empty and must not contain any of
// ` ? . , ' " \ / : ) ( + - * % ~`, the NUL character, or the zero-width
// no-break space (U+FEFF, the UTF-8 BOM) anywhere in the string. The error
// wraps errs.ErrInvalidName and reports the offending character and its byte
// offset in the original string.
//
// Validation never mutates or normalizes the input.
func ValidateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w: table, symbol and column names must have a non-zero length",
			errs.ErrInvalidName)
	}

	for i, r := range name {
		switch r {
		case ' ', '?', '.', ',', '\'', '"', '\\', '/', '\x00',
			':', ')', '(', '+', '-', '*', '%', '~':
			return fmt.Errorf(
				"%w: bad string %q: table, symbol and column names can't contain a %q character, which was found at byte position %d",
				errs.ErrInvalidName, name, r, i)
		case '\uFEFF':
			return fmt.Errorf(
				"%w: bad string %q: table, symbol and column names can't contain a UTF-8 BOM character, which was found at byte position %d",
				errs.ErrInvalidName, name, i)
		}
	}

	return nil
}

// Name is an identifier that already passed ValidateName. It is a plain
// value over the caller's string; construction is the only way to obtain
// one, so holding a Name proves validity.
type Name struct {
	str string
}

// NewName validates name and wraps it as a Name.
func NewName(name string) (Name, error) {
	if err := ValidateName(name); err != nil {
		return Name{}, err
	}

	return Name{str: name}, nil
}

func (n Name) String() string {
	return n.str
}
