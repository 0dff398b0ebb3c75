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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions test a value against an expectation and mark the test
// as having failed if the expectation is not met. The Demand functions do the
// same except that failure is a testing fatality.
//
// It is worth describing how the expectation functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This may not be how we want to interpret nil in all situations but because
// of how errors usually work (nil to indicate no error) we *need* to
// interpret nil in this way.
//
// The CompareWriter type meanwhile, implements the io.Writer interface and
// should be used to capture output. The Compare() and Contains() functions
// can then be used to test the captured output.
package test
