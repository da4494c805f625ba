package internal

import "testing"

func parseSource(t *testing.T, source string) ([]stmt, *interpreterState) {
	t.Helper()
	state := newInterpreterState("<test>", source)
	l := newLexer(source, state)
	tokens := l.scan()
	if !state.valid() {
		t.Fatalf("lex error on %q: %v", source, state.errors)
	}
	p := newParser(state, tokens)
	stmts := p.parse()
	return stmts, state
}

func TestParseSayStatement(t *testing.T) {
	stmts, state := parseSource(t, `Say "hi"`)
	if !state.valid() {
		t.Fatalf("parse errors: %v", state.errors)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*sayStmt); !ok {
		t.Fatalf("expected *sayStmt, got %T", stmts[0])
	}
}

func TestParseLetWithField(t *testing.T) {
	stmts, state := parseSource(t, "Let this.value be 5")
	if !state.valid() {
		t.Fatalf("parse errors: %v", state.errors)
	}
	let, ok := stmts[0].(*letStmt)
	if !ok {
		t.Fatalf("expected *letStmt, got %T", stmts[0])
	}
	if let.field == nil || let.field.lexeme != "value" {
		t.Fatalf("expected field 'value', got %v", let.field)
	}
}

func TestParseFunctionDefVsClassDef(t *testing.T) {
	fnStmts, state := parseSource(t, "Define square with n:\n\tReturn n * n")
	if !state.valid() {
		t.Fatalf("parse errors: %v", state.errors)
	}
	if _, ok := fnStmts[0].(*functionDefStmt); !ok {
		t.Fatalf("expected *functionDefStmt, got %T", fnStmts[0])
	}

	classSrc := "Define Counter with start:\n\tLet this.value be start\n\tDefine increment:\n\t\tLet this.value be this.value + 1"
	classStmts, state := parseSource(t, classSrc)
	if !state.valid() {
		t.Fatalf("parse errors: %v", state.errors)
	}
	class, ok := classStmts[0].(*classDefStmt)
	if !ok {
		t.Fatalf("expected *classDefStmt, got %T", classStmts[0])
	}
	if len(class.methods) != 1 || class.methods[0].name.lexeme != "increment" {
		t.Fatalf("expected one method 'increment', got %v", class.methods)
	}
	if len(class.body) != 2 {
		t.Fatalf("expected field initializer + method in body, got %v", class.body)
	}
}

func TestParseComparisonIsNonAssociative(t *testing.T) {
	// "1 less than 2 less than 3" should fail: comparisons don't chain.
	_, state := parseSource(t, "Say 1 less than 2 less than 3")
	if state.valid() {
		t.Fatalf("expected parse error for chained comparison")
	}
}

func TestParseIfElseIfChain(t *testing.T) {
	src := "If 1 equals 2 then:\n\tSay 1\nElse If 1 equals 1 then:\n\tSay 2\nElse:\n\tSay 3"
	stmts, state := parseSource(t, src)
	if !state.valid() {
		t.Fatalf("parse errors: %v", state.errors)
	}
	top, ok := stmts[0].(*ifStmt)
	if !ok {
		t.Fatalf("expected *ifStmt, got %T", stmts[0])
	}
	if len(top.elseBody) != 1 {
		t.Fatalf("expected else-if chained as single nested ifStmt, got %d stmts", len(top.elseBody))
	}
	if _, ok := top.elseBody[0].(*ifStmt); !ok {
		t.Fatalf("expected nested *ifStmt in else branch, got %T", top.elseBody[0])
	}
}

func TestParsePostfixChain(t *testing.T) {
	stmts, state := parseSource(t, "Say a.b[0](1, 2)")
	if !state.valid() {
		t.Fatalf("parse errors: %v", state.errors)
	}
	say := stmts[0].(*sayStmt)
	call, ok := say.expression.(*callExpr)
	if !ok {
		t.Fatalf("expected outermost *callExpr, got %T", say.expression)
	}
	idx, ok := call.callee.(*indexExpr)
	if !ok {
		t.Fatalf("expected *indexExpr under call, got %T", call.callee)
	}
	if _, ok := idx.target.(*memberExpr); !ok {
		t.Fatalf("expected *memberExpr under index, got %T", idx.target)
	}
}

func TestParseUnterminatedBlockFails(t *testing.T) {
	_, state := parseSource(t, "If true then:")
	if state.valid() {
		t.Fatalf("expected parse error for missing block body")
	}
}

func TestParseReturnOutsideDefineIsSyntaxError(t *testing.T) {
	_, state := parseSource(t, "Return 1")
	if state.valid() {
		t.Fatalf("expected a SyntaxError for Return outside any Define")
	}
	if state.errors[0].kind != kindSyntaxError {
		t.Fatalf("expected SyntaxError, got %s", state.errors[0].kind)
	}
}

func TestParseReturnInsideDefineIsAllowed(t *testing.T) {
	_, state := parseSource(t, "Define f:\n\tReturn 1")
	if !state.valid() {
		t.Fatalf("unexpected parse errors: %v", state.errors)
	}
}
