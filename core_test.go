package main

import "testing"

func TestDefineAndCall(t *testing.T) {
	ttmTest("define-and-call").
		withProgram(`#<ds;greet;Hello, #<ds;name;world>#<name>!>#<greet>`).
		expectOutput("Hello, world!").
		run(t)
}

func TestSegmentSubstitution(t *testing.T) {
	ttmTest("segment-substitution").
		withProgram(`#<ds;greet;Hi, X!>#<ss;greet;X>#<greet;Bob>`).
		expectOutput("Hi, Bob!").
		run(t)
}

func TestArithHex(t *testing.T) {
	ttmTest("add-hex").
		withProgram(`#<ad;10;0x10>`).
		expectOutput("26").
		run(t)
}

func TestArithDivideByZero(t *testing.T) {
	ttmTest("divide-by-zero").
		withProgram(`#<dv;10;0>`).
		expectError(errDecimalRequired).
		run(t)
}

func TestLockPreventsErase(t *testing.T) {
	ttmTest("lock-prevents-erase").
		withProgram(`#<ds;one;1>#<lf;one>#<es;one>#<one>`).
		expectOutput("1").
		run(t)
}

func TestUnknownNameFails(t *testing.T) {
	ttmTest("unknown-name").
		withProgram(`#<nope>`).
		expectError(errNoName).
		run(t)
}

func TestExitSetsExitCode(t *testing.T) {
	ttmTest("exit-sets-code").
		withProgram(`before#<exit>after`).
		expectExitCode(0).
		run(t)
}

func TestPredefinedOption(t *testing.T) {
	ttmTest("predefined-option").
		withPredefined("name", "Ada").
		withProgram(`Hello, #<name>!`).
		expectOutput("Hello, Ada!").
		run(t)
}
