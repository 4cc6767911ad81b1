package ilist

// Error represents a misuse of a list. Using a special type ensures that
// errors outside of this space are not accidentally introduced
type Error struct {
	string
}

// Error implements error.Error
func (e *Error) Error() string {
	return e.string
}

var (
	ErrEmpty		=	&Error{"ilist: list is empty"}
	ErrLinked		=	&Error{"ilist: element is already linked"}
	ErrNotLinked	=	&Error{"ilist: element is not linked"}
)
