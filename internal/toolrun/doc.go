// Package toolrun runs external optimizers under a wall-clock budget.
//
// Every invocation ends in one of three outcomes: the tool exited zero
// ([Success]), exited non-zero or could not be started ([ToolFailure]), or
// was still running when the budget expired and was killed ([TimedOut]).
// Output streams are discarded. On Unix the child runs in its own process
// group so that a terminal interrupt does not reach it and a timeout kill
// takes any helpers it spawned along with it.
package toolrun
