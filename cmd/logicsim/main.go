// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim runs logic circuits from the command line.
//
package main

func main() {
	Execute()
}
