/*
Package funcdrills is a collection of small functional-programming drills.

# Overview

Each drill is a leaf: nothing in the package depends on anything else in the
package, and every function can be lifted out and used on its own. The
drills favour plain functions and closures over interfaces and structs.

# Available Drills

Classification:
  - IsNumber: reports whether a value should be treated as a number

Guarded application:
  - TypeCheck: apply a Transform only when a Predicate accepts the argument
  - MakeSafe, MakeSafeLambda: factories returning a reusable SafeFunc
  - SafeApply: typed comma-ok variant
  - Doubling, IsPositiveInteger: ready-made building blocks

Message dispatch:
  - MakePair: a pair accessed through selector messages (0, 1, "pair")
  - Pair: the same product type with named accessors

Sequences:
  - Sizes, OddLenOnly: utilities over sequences of Tuple

Closures with state:
  - MakeFib: independent Fibonacci generators

Text:
  - BigramFrequencies: normalized adjacent-character-pair frequencies

# Failure Styles

Guarded application never returns an error. When the predicate rejects the
argument the result is the sentinel Declined (boolean false):

	safe := funcdrills.MakeSafe(funcdrills.Doubling, funcdrills.IsPositiveInteger)
	safe(5)     // 10
	safe("bad") // false

Everything else reports caller mistakes and undefined computations through
errors that can be matched with errors.Is:

	_, err := funcdrills.MakePair(10, "hello")("invalid")
	errors.Is(err, funcdrills.ErrInvalidSelector) // true

	_, err = funcdrills.BigramFrequencies("a")
	errors.Is(err, funcdrills.ErrNoBigrams) // true

# Composition

Transform and Predicate carry small combinators:

	addThree := funcdrills.Transform(func(x any) any { return x.(int) + 3 })
	quad := funcdrills.Transform(funcdrills.Doubling).Then(funcdrills.Doubling)
	legal := funcdrills.Predicate(funcdrills.IsPositiveInteger).And(isEven)

	addThree.Guard(legal)(4) // 7
	quad(3)                  // 12
*/
package funcdrills
