package token

// Keyword is the closed set of ECMAScript 5.1 keywords plus the
// future-reserved words (ECMA-262 §7.6.1.2).
type Keyword int

const (
	BREAK Keyword = iota
	CASE
	CATCH
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	FINALLY
	FOR
	FUNCTION
	IF
	IN
	INSTANCEOF
	NEW
	RETURN
	SWITCH
	THIS
	THROW
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	// Future-reserved words (ES5.1 §7.6.1.2).
	CLASS
	CONST
	ENUM
	EXPORT
	EXTENDS
	IMPORT
	SUPER
)

var keywordNames = map[Keyword]string{
	BREAK: "break", CASE: "case", CATCH: "catch", CONTINUE: "continue",
	DEBUGGER: "debugger", DEFAULT: "default", DELETE: "delete", DO: "do",
	ELSE: "else", FINALLY: "finally", FOR: "for", FUNCTION: "function",
	IF: "if", IN: "in", INSTANCEOF: "instanceof", NEW: "new",
	RETURN: "return", SWITCH: "switch", THIS: "this", THROW: "throw",
	TRY: "try", TYPEOF: "typeof", VAR: "var", VOID: "void", WHILE: "while",
	WITH: "with", CLASS: "class", CONST: "const", ENUM: "enum",
	EXPORT: "export", EXTENDS: "extends", IMPORT: "import", SUPER: "super",
}

func (k Keyword) String() string { return keywordNames[k] }

// StrictKeyword is reserved only inside strict-mode code (ES5.1 §7.6.1.2).
// The lexer classifies these unconditionally; the parser is responsible
// for applying strict-mode restrictions where it matters.
type StrictKeyword int

const (
	IMPLEMENTS StrictKeyword = iota
	INTERFACE
	LET
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC
	STATIC
	YIELD
)

var strictKeywordNames = map[StrictKeyword]string{
	IMPLEMENTS: "implements", INTERFACE: "interface", LET: "let",
	PACKAGE: "package", PRIVATE: "private", PROTECTED: "protected",
	PUBLIC: "public", STATIC: "static", YIELD: "yield",
}

func (k StrictKeyword) String() string { return strictKeywordNames[k] }

var keywordsByName = map[string]Keyword{}
var strictKeywordsByName = map[string]StrictKeyword{}

func init() {
	for k, n := range keywordNames {
		keywordsByName[n] = k
	}
	for k, n := range strictKeywordNames {
		strictKeywordsByName[n] = k
	}
}

// LookupKeyword classifies an identifier string, returning (keyword, true)
// if it is an ES5.1 reserved word.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywordsByName[ident]
	return k, ok
}

// LookupStrictKeyword classifies an identifier string as a strict-mode
// reserved word, returning (keyword, true) if it matches.
func LookupStrictKeyword(ident string) (StrictKeyword, bool) {
	k, ok := strictKeywordsByName[ident]
	return k, ok
}
