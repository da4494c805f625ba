package internal

import (
	"bytes"
	"strings"
	"testing"
)

// runAndCapture runs source through the full pipeline and returns
// what it printed on Say.
func runAndCapture(t *testing.T, source string) (string, bool) {
	t.Helper()
	var buf bytes.Buffer
	result := Run("<test>", source, &buf)
	if !result.OK {
		for _, e := range result.Errors {
			t.Logf("error: %s", e.Error())
		}
	}
	return buf.String(), result.OK
}

func checkSay(t *testing.T, source string, want string) {
	t.Helper()
	got, ok := runAndCapture(t, source)
	if !ok {
		t.Fatalf("source failed to run:\n%s", source)
	}
	if strings.TrimRight(got, "\n") != want {
		t.Errorf("source:\n%s\ngot %q, want %q", source, got, want)
	}
}

func TestArithmetic(t *testing.T) {
	checkSay(t, "Say 1 + 2 + 3", "6")
	checkSay(t, "Say 8 - 2", "6")
	checkSay(t, "Say 2 * 3 * 4", "24")
	checkSay(t, "Say 12 / 4", "3")
	checkSay(t, "Say -5", "-5")
	checkSay(t, "Say 2 + 3 * 4", "14")
}

func TestStringConcatenation(t *testing.T) {
	checkSay(t, `Say "hello " + "world"`, "hello world")
	checkSay(t, `Say "count: " + 5`, "count: 5")
}

func TestComparisonsAndLogic(t *testing.T) {
	checkSay(t, "Say 3 greater than 2", "true")
	checkSay(t, "Say 3 less than 2", "false")
	checkSay(t, "Say 3 equals 3", "true")
	checkSay(t, "Say 3 not equals 4", "true")
	checkSay(t, "Say true and false", "false")
	checkSay(t, "Say true or false", "true")
	checkSay(t, "Say not true", "false")
}

func TestTruthiness(t *testing.T) {
	// Only null and false are falsy; 0 and "" are truthy (spec's
	// deliberate break from Python-style falsiness).
	truthyCheck := func(value string, want string) {
		src := "If " + value + " then:\n\tSay \"yes\"\nElse:\n\tSay \"no\""
		checkSay(t, src, want)
	}
	truthyCheck("0", "yes")
	truthyCheck(`""`, "yes")
	truthyCheck("null", "no")
	truthyCheck("false", "no")
}

func TestLetAndRebind(t *testing.T) {
	checkSay(t, "Let x be 1\nLet x be x + 1\nSay x", "2")
}

func TestIfElse(t *testing.T) {
	src := `If 5 greater than 3 then:
	Say "bigger"
Else:
	Say "smaller"`
	checkSay(t, src, "bigger")
}

func TestWhileLoop(t *testing.T) {
	src := `Let i be 0
While i less than 3 do:
	Say i
	Let i be i + 1`
	checkSay(t, src, "0\n1\n2")
}

func TestForEachList(t *testing.T) {
	src := `Let items be [1, 2, 3]
For each item in items do:
	Say item`
	checkSay(t, src, "1\n2\n3")
}

func TestFunctionCallAndReturn(t *testing.T) {
	src := `Define square with n:
	Return n * n
Say square(5)`
	checkSay(t, src, "25")
}

func TestClassNewAndFields(t *testing.T) {
	src := `Define Counter with start:
	Let this.value be start
	Define increment:
		Let this.value be this.value + 1
Let c be New Counter with 10
c.increment()
Say c.value`
	checkSay(t, src, "11")
}

func TestTopLevelReturnDoesNotCrashTheProcess(t *testing.T) {
	_, ok := runAndCapture(t, "Return 1")
	if ok {
		t.Fatalf("expected a reported error for Return outside any Define, not success")
	}
}

func TestTryCatch(t *testing.T) {
	src := `Try:
	Throw "boom"
Catch e:
	Say "caught: " + e`
	checkSay(t, src, "caught: boom")
}

func TestTryCatchRuntimeError(t *testing.T) {
	src := `Try:
	Let x be [1][5]
Catch e:
	Say "caught"`
	checkSay(t, src, "caught")
}

func TestStopStatement(t *testing.T) {
	src := `Say "before"
Stop
Say "after"`
	checkSay(t, src, "before")
}

func TestDictLiteralAndIndex(t *testing.T) {
	src := `Let d be {"a": 1, "b": 2}
Say d["a"] + d["b"]`
	checkSay(t, src, "3")
}

func TestListIndexNegative(t *testing.T) {
	checkSay(t, `Say [1, 2, 3][-1]`, "3")
}

func TestBuiltinLength(t *testing.T) {
	checkSay(t, `Say length([1, 2, 3])`, "3")
	checkSay(t, `Say length("hello")`, "5")
}

func TestBuiltinAppendAndJoin(t *testing.T) {
	src := `Let items be [1, 2]
Call append with items, 3
Say join(items, ", ")`
	checkSay(t, src, "1, 2, 3")
}

func TestBuiltinMath(t *testing.T) {
	checkSay(t, `Say sqrt(9)`, "3")
	checkSay(t, `Say power(2, 10)`, "1024")
	checkSay(t, `Say floor(1.7)`, "1")
	checkSay(t, `Say ceiling(1.2)`, "2")
}

func TestBuiltinRandomIsWithinRange(t *testing.T) {
	src := `Let r be random()
If r greater equal 0 and r less than 1 then:
	Say "ok"
Else:
	Say "bad"`
	checkSay(t, src, "ok")
}

func TestBuiltinStringExtras(t *testing.T) {
	checkSay(t, `Say trim("  hi  ")`, "hi")
	checkSay(t, `Say replace("banana", "a", "o")`, "bonono")
	checkSay(t, `Say starts_with("convo", "con")`, "true")
	checkSay(t, `Say ends_with("convo", "vo")`, "true")
}

func TestBuiltinToList(t *testing.T) {
	checkSay(t, `Say to_list("ab")`, "[a, b]")
	checkSay(t, `Say to_list([1, 2])`, "[1, 2]")
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	_, ok := runAndCapture(t, "Say missing")
	if ok {
		t.Fatalf("expected undefined variable to fail")
	}
}
