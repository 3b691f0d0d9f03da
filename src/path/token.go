package path

type (
	tokenType string
	token     struct {
		Column    int64
		Kind      tokenType
		Ident     string
		StringVal string
		IntVal    int64
	}
)

const (
	tokenPeriod       tokenType = "."
	tokenOpenBracket  tokenType = "["
	tokenCloseBracket tokenType = "]"
	tokenIdentifier   tokenType = "identifier"
	tokenString       tokenType = "string"
	tokenInteger      tokenType = "integer"
	tokenEOS          tokenType = "<EOS>"
)
