/*
Package cssom provides an abstraction for CSS stylesheets.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Charts in this
module carry their interactivity in a style fragment: every control state
is mapped to a visible view by structural selectors. Producing and checking
these fragments are two sides of the same coin, so both go through the
interfaces StyleSheet and Rule.

There is not very much open source Go code around for handling CSS, except
the great work of https://godoc.org/github.com/andybalholm/cascadia for
selectors and https://github.com/aymerick/douceur for parsing. Concrete
implementations of the interfaces live in sub-packages (see package
douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
