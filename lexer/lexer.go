/*
File    : golox/lexer/lexer.go
*/
package lexer

// Lexer performs lexical analysis (tokenization) of Lox source code.
// It scans through the source text character by character, identifying and
// creating tokens that represent the syntactic elements of the language.
//
// The lexer maintains state about its current position in the source code,
// including the line number for error reporting. It handles:
//   - Punctuation and operators (single and two-character forms)
//   - Keywords (var, print, true, false, nil, ...)
//   - Literals (numbers, strings)
//   - Identifiers (variable names)
//   - Trivia (whitespace, tabs, newlines, line comments), which are kept
//     in the token stream rather than discarded
//
// Unknown characters and unterminated strings produce LexerError values
// without halting the scan: the stream continues so every lexical fault in
// the input can be reported from a single pass.
//
// Fields:
//   - Src: The complete source code as a string
//   - Current: The byte at the current position being examined
//   - Position: The current index in the source string (0-indexed)
//   - SrcLength: The total length of the source string
//   - Line: The current line number in the source (1-indexed)
type Lexer struct {
	Src       string // Entire source code in plain text format
	Current   byte   // Current character being examined
	Position  int    // Current position of pointer in the source code
	SrcLength int    // Length of source string
	Line      int    // Line number in source (1-indexed)

	eof bool // EOF token already emitted
}

// NewLexer creates and initializes a new Lexer for the given source code.
// It sets up the initial state with the first character of the source and
// starts line tracking at line 1.
//
// Example:
//
//	lex := NewLexer("var x = 42;")
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
	}
}

// NextToken retrieves the next token from the source code stream.
// On a lexical fault it returns the zero Token with a non-nil *LexerError
// and keeps scanning; callers interleave tokens and errors until the EOF
// token appears. Once the source is exhausted every call returns an EOF
// token, so callers stop at the first one (ConsumeTokens does).
func (lex *Lexer) NextToken() (Token, *LexerError) {

	var token Token

	if lex.Position >= lex.SrcLength {
		lex.eof = true
		return NewToken(EOF_TYPE, "", lex.Line), nil
	}

	// Match the current character to determine token type
	switch lex.Current {
	case '(':
		token = NewToken(LEFT_PAREN, "(", lex.Line)
	case ')':
		token = NewToken(RIGHT_PAREN, ")", lex.Line)
	case '{':
		token = NewToken(LEFT_BRACE, "{", lex.Line)
	case '}':
		token = NewToken(RIGHT_BRACE, "}", lex.Line)
	case ',':
		token = NewToken(COMMA, ",", lex.Line)
	case '.':
		token = NewToken(DOT, ".", lex.Line)
	case '-':
		token = NewToken(MINUS, "-", lex.Line)
	case '+':
		token = NewToken(PLUS, "+", lex.Line)
	case ';':
		token = NewToken(SEMICOLON, ";", lex.Line)
	case '*':
		token = NewToken(STAR, "*", lex.Line)
	case '/':
		// Could be '/' (division) or '//' (line comment)
		if lex.Peek() == '/' {
			return lex.readLineComment(), nil
		}
		token = NewToken(SLASH, "/", lex.Line)
	case '=':
		// Could be '=' (assignment) or '==' (equality)
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewToken(EQUAL_EQUAL, "==", lex.Line)
		} else {
			token = NewToken(EQUAL, "=", lex.Line)
		}
	case '!':
		// Could be '!' (logical NOT) or '!=' (not equal)
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewToken(BANG_EQUAL, "!=", lex.Line)
		} else {
			token = NewToken(BANG, "!", lex.Line)
		}
	case '<':
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewToken(LESS_EQUAL, "<=", lex.Line)
		} else {
			token = NewToken(LESS, "<", lex.Line)
		}
	case '>':
		if lex.Peek() == '=' {
			lex.Advance()
			token = NewToken(GREATER_EQUAL, ">=", lex.Line)
		} else {
			token = NewToken(GREATER, ">", lex.Line)
		}
	case ' ':
		token = NewToken(WHITESPACE_TRIVIA, " ", lex.Line)
	case '\t':
		token = NewToken(TAB_TRIVIA, "\t", lex.Line)
	case '\n':
		// The NEWLINE token is tagged with the pre-increment line number
		token = NewToken(NEWLINE_TRIVIA, "\n", lex.Line)
		lex.Line++
	case '"':
		// String literal - delegate to specialized handler
		return lex.readStringLiteral()
	default:
		if isDigit(lex.Current) {
			return lex.readNumber(), nil
		}
		if isAlpha(lex.Current) || lex.Current == '_' {
			return lex.readIdentifier(), nil
		}

		// Not part of the language's alphabet: report and keep scanning
		err := NewLexerError(UnknownChar, lex.Current, lex.Line)
		lex.Advance()
		return Token{}, err
	}

	// Move to the next character for the next token
	lex.Advance()

	return token, nil
}

// Peek looks ahead to the next character in the source without consuming
// it. Returns 0 at end of source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// PeekNext looks two characters ahead without consuming anything. Returns 0
// past the end of source. The number rule does not need it: its '.' check
// runs while the '.' is the current character, so Peek suffices.
func (lex *Lexer) PeekNext() byte {
	if lex.Position+2 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+2]
}

// Advance moves the lexer to the next character in the source.
// Line tracking for newlines is handled where the newline is consumed.
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// readLineComment consumes a '//' comment up to (not including) the next
// newline and returns a COMMENT trivia token holding the comment text.
func (lex *Lexer) readLineComment() Token {
	start := lex.Position
	line := lex.Line

	// Skip the '//' characters
	lex.Advance()
	lex.Advance()

	// Consume until end of line or end of file
	for lex.Current != '\n' && lex.Position < lex.SrcLength {
		lex.Advance()
	}
	return NewToken(COMMENT_TRIVIA, lex.Src[start:lex.Position], line)
}

// readStringLiteral consumes a double-quoted string literal. The content
// between the quotes is taken verbatim (no escape processing). A newline
// or end of input inside the literal aborts with UnterminatedString at the
// line the literal started on.
func (lex *Lexer) readStringLiteral() (Token, *LexerError) {
	startLine := lex.Line

	// Skip the opening quote
	lex.Advance()

	start := lex.Position
	for lex.Position < lex.SrcLength {
		if lex.Current == '"' {
			content := lex.Src[start:lex.Position]
			lex.Advance() // consume the closing quote
			return NewStringToken(content, startLine), nil
		}
		if lex.Current == '\n' {
			// Consume the newline so scanning resumes on the next line;
			// the error itself is pinned to the opening line.
			lex.Advance()
			lex.Line++
			return Token{}, NewLexerError(UnterminatedString, 0, startLine)
		}
		lex.Advance()
	}
	return Token{}, NewLexerError(UnterminatedString, 0, startLine)
}

// readNumber consumes a number literal: a run of digits with at most one
// '.', and only when the '.' is followed by a digit. "123." therefore
// lexes as NUMBER followed by DOT. The exact source lexeme is retained
// alongside the parsed IEEE 754 double.
func (lex *Lexer) readNumber() Token {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance() // consume the '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}
	lexeme := lex.Src[start:lex.Position]
	return NewNumberToken(lexeme, parseFloat(lexeme), lex.Line)
}

// readIdentifier consumes an identifier or keyword: an ASCII letter or '_'
// followed by letters, digits, or '_'. The keyword table decides between a
// keyword token and a plain IDENTIFIER.
func (lex *Lexer) readIdentifier() Token {
	start := lex.Position
	for isAlphaNumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	name := lex.Src[start:lex.Position]
	if tokenType := lookupIdent(name); tokenType != IDENTIFIER {
		return NewToken(tokenType, name, lex.Line)
	}
	return NewIdentToken(name, lex.Line)
}

// ConsumeTokens tokenizes the entire source and returns all tokens plus
// every lexical error encountered. The token slice always ends with
// exactly one EOF token; trivia tokens are included so the result is a
// lossless projection of the source.
func (lex *Lexer) ConsumeTokens() ([]Token, []*LexerError) {
	tokens := make([]Token, 0)
	errors := make([]*LexerError, 0)
	for !lex.eof {
		token, err := lex.NextToken()
		if err != nil {
			errors = append(errors, err)
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens, errors
}
