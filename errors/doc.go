// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package errors defines the categorized Error type used across this
// module. It allows code to wrap errors around other errors and produce
// normalised, formatted output without every layer in a call chain
// repeating its caller's message.
//
// The most useful feature is deduplication of wrapped errors: code does
// not need to worry about the immediate context of the function which
// creates the error. For instance:
//
//	func main() {
//		err := A()
//		if err != nil {
//			fmt.Println(err)
//		}
//	}
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return errors.New(errors.SetupError, err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return errors.New(errors.SetupError, "ROM too large")
//	}
//
// Following the chain from main(), B creates a SetupError and A wraps it
// in another SetupError; because the Errno matches, New unwraps rather
// than nests, so the message stays "ROM too large" instead of doubling
// up with a repeated wrapper layer.
package errors
