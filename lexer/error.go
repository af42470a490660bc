package lexer

import (
	"fmt"

	"github.com/c2nes/javalang/token"
)

// Error reports a lexical failure: an unterminated literal or a byte the
// operator table does not recognize. It is distinct from parser.SyntaxError,
// which reports failures above the token level.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
