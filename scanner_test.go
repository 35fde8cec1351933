package main

import "testing"

func TestPlainTextPassesThrough(t *testing.T) {
	ttmTest("plain-text").
		withProgram(`hello`).
		expectOutput("hello").
		run(t)
}

func TestQuoteStripsOneLevel(t *testing.T) {
	ttmTest("quote-strips-one-level").
		withProgram(`a<b<c>d>e`).
		expectOutput("ab<c>de").
		run(t)
}

func TestEscapePassesNextVerbatim(t *testing.T) {
	ttmTest("escape-verbatim").
		withProgram(`a\#b\<c`).
		expectOutput("a#b<c").
		run(t)
}

func TestEscapedBracketInsideQuote(t *testing.T) {
	// the scanner's dequote copies an escape sequence through as a unit, so
	// an escaped close bracket does not close the quote; output rendering
	// then collapses the escape pair to the bare bracket
	ttmTest("escaped-bracket-in-quote").
		withProgram(`<a\>b>`).
		expectOutput(`a>b`).
		run(t)
}

func TestEscapeSequencesCollapseOnOutput(t *testing.T) {
	// quoting preserves the escape pair into the finalized text; the output
	// renderer resolves it to the control character
	ttmTest("escape-newline-on-output").
		withProgram(`<a\nb>`).
		expectOutput("a\nb").
		run(t)
}

func TestTopLevelEscapeDropsToLiteral(t *testing.T) {
	// at top level the scanner consumes the escape and passes the next code
	// point through, so \n outside a quote is a literal n
	ttmTest("top-level-escape-literal").
		withProgram(`a\nb`).
		expectOutput("anb").
		run(t)
}

func TestLoneSharpPassesThrough(t *testing.T) {
	ttmTest("lone-sharp").
		withProgram(`a#b ##c`).
		expectOutput("a#b ##c").
		run(t)
}

func TestUnterminatedQuoteFails(t *testing.T) {
	ttmTest("unterminated-quote").
		withProgram(`<abc`).
		expectError(errUnexpectedEOS).
		run(t)
}

func TestUnterminatedCallFails(t *testing.T) {
	ttmTest("unterminated-call").
		withProgram(`#<ad;1;2`).
		expectError(errUnexpectedEOS).
		run(t)
}

func TestActiveResultIsRescanned(t *testing.T) {
	// the quoted body survives ds intact, then the active call's result is
	// spliced before the active cursor and expanded on rescan
	ttmTest("active-rescan").
		withProgram(`#<ds;x;<#<ad;1;1>>>#<x>`).
		expectOutput("2").
		run(t)
}

func TestPassiveResultIsNotRescanned(t *testing.T) {
	ttmTest("passive-no-rescan").
		withProgram(`#<ds;x;<#<ad;1;1>>>##<x>`).
		expectOutput(`#<ad;1;1>`).
		run(t)
}

func TestPassiveDefineThenCall(t *testing.T) {
	ttmTest("passive-define-then-call").
		withProgram(`##<ds;a;X>#<a>`).
		expectOutput("X").
		run(t)
}

func TestNestedCallInsideArgument(t *testing.T) {
	ttmTest("nested-call-in-arg").
		withProgram(`#<ds;a;X#<flip;ab>Y>#<a>`).
		expectOutput("XbaY").
		run(t)
}

func TestTtmMetaRewritesControlCharacters(t *testing.T) {
	ttmTest("ttm-meta").
		withProgram(`#<ttm;meta;@[!]~>@[ad!1!2]`).
		expectOutput("3").
		run(t)
}

func TestTtmMetaWrongLengthFails(t *testing.T) {
	ttmTest("ttm-meta-wrong-length").
		withProgram(`#<ttm;meta;@[>`).
		expectError(errIllegalMeta).
		run(t)
}

func TestTtmUnknownSubcommandFails(t *testing.T) {
	ttmTest("ttm-unknown-subcommand").
		withProgram(`#<ttm;bogus>`).
		expectError(errIllegalMeta).
		run(t)
}

func TestEmptyCallNameFails(t *testing.T) {
	ttmTest("empty-call-name").
		withProgram(`#<>`).
		expectError(errNoName).
		run(t)
}

func TestStackOverflow(t *testing.T) {
	// f regenerates a call to itself inside its own argument collection, so
	// each expansion nests one level deeper until the frame stack fills
	ttmTest("stack-overflow").
		withProgram(`#<ds;f;<#<ad;1;#<f>>>>#<f>`).
		expectError(errStackOverflow).
		run(t)
}

func TestExecutionBudget(t *testing.T) {
	ttmTest("execution-budget").
		withOptions(WithExecLimit(100)).
		withProgram(`#<ds;loop;<X#<loop>>>#<loop>`).
		expectError(errMemoryExhausted).
		run(t)
}

func TestTooManyArguments(t *testing.T) {
	program := "#<ad"
	for i := 0; i < 63; i++ {
		program += ";1"
	}
	program += ">"
	ttmTest("too-many-arguments").
		withProgram(program).
		expectError(errTooManyParams).
		run(t)
}

func TestTooFewArguments(t *testing.T) {
	ttmTest("too-few-arguments").
		withProgram(`#<ds;a>`).
		expectError(errTooFewParams).
		run(t)
}

func TestExitStopsScanning(t *testing.T) {
	ttmTest("exit-stops-scanning").
		withProgram(`a#<exit>b`).
		expectOutput("a").
		expectExitCode(0).
		run(t)
}

func TestExitCodeAbsoluteValue(t *testing.T) {
	ttmTest("exit-code-absolute").
		withProgram(`#<exit;-3>`).
		expectExitCode(3).
		run(t)
}
