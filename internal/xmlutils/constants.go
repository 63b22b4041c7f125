package xmlutils

// XPath expressions locating the parts of a bank-to-customer statement.
// Element names match regardless of the document's namespace version.
const (
	PathStatement   = "//BkToCstmrStmt/Stmt"
	PathStatementID = "//BkToCstmrStmt/Stmt/Id"
)
