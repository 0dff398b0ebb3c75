// This file is part of Bambam.
//
// Bambam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bambam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bambam.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates curated errors. For
// example:
//
//	e := curated.Errorf("extension: %s", name)
//
//	if curated.Is(e, "extension: %s") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("no media available for category: %s", cat)
//	f := curated.Errorf("eventmap: %v", e)
//
//	curated.Is(f, "no media available for category: %s")  -> false
//	curated.Has(f, "no media available for category: %s") -> true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. Alternatively, we can
// think of the difference as being 'expected' and 'unexpected' depending on
// how we choose to handle the result of the function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors. Wrapping at every
// package boundary with a pattern like "eventmap: %v" will never produce the
// stuttering "eventmap: eventmap: ..." message.
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// There is no special provision for sentinel errors in the curated package
// but they are achievable in practice through the use of the Is() and Has()
// functions. Sentinel patterns should be stored as a const string, suitably
// named and commented.
package curated
