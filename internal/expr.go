package internal

// expr is satisfied by every expression AST node. Evaluation
// dispatches through accept/exprVisitor.
type expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitLiteralExpr(e *literalExpr) R
	visitVariableExpr(e *variableExpr) R
	visitBinaryExpr(e *binaryExpr) R
	visitLogicalExpr(e *logicalExpr) R
	visitUnaryExpr(e *unaryExpr) R
	visitListExpr(e *listExpr) R
	visitDictExpr(e *dictExpr) R
	visitIndexExpr(e *indexExpr) R
	visitMemberExpr(e *memberExpr) R
	visitCallExpr(e *callExpr) R
	visitNewExpr(e *newExpr) R
	visitGroupingExpr(e *groupingExpr) R
}

// literalExpr folds number, string, bool and null literals into a
// single node carrying a Go value.
type literalExpr struct {
	value interface{}
	line  int
}

func (e *literalExpr) accept(v exprVisitor) R { return v.visitLiteralExpr(e) }

type variableExpr struct {
	name *token
}

func (e *variableExpr) accept(v exprVisitor) R { return v.visitVariableExpr(e) }

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *binaryExpr) accept(v exprVisitor) R { return v.visitBinaryExpr(e) }

// logicalExpr is split out from binaryExpr because `and`/`or` need to
// short-circuit, unlike every other binary operator.
type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *logicalExpr) accept(v exprVisitor) R { return v.visitLogicalExpr(e) }

type unaryExpr struct {
	operator *token
	operand  expr
}

func (e *unaryExpr) accept(v exprVisitor) R { return v.visitUnaryExpr(e) }

type listExpr struct {
	elements []expr
	bracket  *token
}

func (e *listExpr) accept(v exprVisitor) R { return v.visitListExpr(e) }

type dictExpr struct {
	keys   []expr
	values []expr
	brace  *token
}

func (e *dictExpr) accept(v exprVisitor) R { return v.visitDictExpr(e) }

type indexExpr struct {
	target  expr
	key     expr
	bracket *token
}

func (e *indexExpr) accept(v exprVisitor) R { return v.visitIndexExpr(e) }

type memberExpr struct {
	target expr
	field  *token
}

func (e *memberExpr) accept(v exprVisitor) R { return v.visitMemberExpr(e) }

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

func (e *callExpr) accept(v exprVisitor) R { return v.visitCallExpr(e) }

type newExpr struct {
	class     *token
	arguments []expr
}

func (e *newExpr) accept(v exprVisitor) R { return v.visitNewExpr(e) }

type groupingExpr struct {
	inner expr
}

func (e *groupingExpr) accept(v exprVisitor) R { return v.visitGroupingExpr(e) }
