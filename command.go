// Command dispatch.
//
// The host routes tagged commands to the store. The store owns
// CreateBookmark, DeleteBookmark and PendingName. GoTo and
// RequestNewBookmark belong to the host: navigating, and turning the
// pending name plus the current page into a CreateBookmark. Handing either
// to the store means the host's routing is broken.
package bookmarks

import "fmt"

// Command is one of CreateBookmark, DeleteBookmark, PendingName, GoTo,
// RequestNewBookmark or None.
type Command interface {
	command()
}

// CreateBookmark adds a bookmark. Path must be canonical.
type CreateBookmark struct {
	Path string
	Name string
	Page int32
}

// DeleteBookmark removes every bookmark named Name under Path.
type DeleteBookmark struct {
	Path string
	Name string
}

// PendingName replaces the in-progress bookmark name.
type PendingName struct {
	Text string
}

// GoTo asks the host to show Page of Path.
type GoTo struct {
	Path string
	Page int32
}

// RequestNewBookmark asks the host to create a bookmark named Name at its
// current page.
type RequestNewBookmark struct {
	Name string
}

// None does nothing.
type None struct{}

func (CreateBookmark) command()     {}
func (DeleteBookmark) command()     {}
func (PendingName) command()        {}
func (GoTo) command()               {}
func (RequestNewBookmark) command() {}
func (None) command()               {}

// deref unwraps a pointer to a command variant, so &CreateBookmark{} and
// CreateBookmark{} dispatch the same way. A nil pointer is the variant's
// zero value.
func deref(cmd Command) Command {
	switch c := cmd.(type) {
	case *CreateBookmark:
		return value(c)
	case *DeleteBookmark:
		return value(c)
	case *PendingName:
		return value(c)
	case *GoTo:
		return value(c)
	case *RequestNewBookmark:
		return value(c)
	case *None:
		return None{}
	}
	return cmd
}

func value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Update applies cmd. It panics with an error wrapping
// ErrContractViolation if cmd is one the host must intercept.
func (s *Store) Update(cmd Command) {
	if err := s.Dispatch(cmd); err != nil {
		panic(err)
	}
}

// Dispatch applies cmd like Update but returns the contract violation
// instead of panicking. A nil cmd is treated as None. Variants may be
// passed by value or by pointer.
func (s *Store) Dispatch(cmd Command) error {
	cmd = deref(cmd)
	switch c := cmd.(type) {
	case CreateBookmark:
		s.Create(c.Path, c.Name, c.Page)
	case DeleteBookmark:
		s.Delete(c.Path, c.Name)
	case PendingName:
		s.SetPending(c.Text)
	case None, nil:
	case GoTo, RequestNewBookmark:
		return fmt.Errorf("%w: %T", ErrContractViolation, cmd)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	return nil
}

// Owned reports whether the store handles cmd itself.
func Owned(cmd Command) bool {
	switch deref(cmd).(type) {
	case CreateBookmark, DeleteBookmark, PendingName, None, nil:
		return true
	}
	return false
}

// ParseCommand returns the zero value of the command variant called name.
func ParseCommand(name string) (Command, error) {
	switch name {
	case "CreateBookmark":
		return CreateBookmark{}, nil
	case "DeleteBookmark":
		return DeleteBookmark{}, nil
	case "PendingName":
		return PendingName{}, nil
	case "GoTo":
		return GoTo{}, nil
	case "RequestNewBookmark":
		return RequestNewBookmark{}, nil
	case "None":
		return None{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
