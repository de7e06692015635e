// Package winner defines the immutable Winner record returned from a
// completed or cancelled search (§4.7).
//
// A Winner is created empty and populated once by crawler.Calc; every
// constructor and accessor here defensively copies the numeral slice so
// a Winner's identity cannot be mutated out from under a caller holding
// a reference to it.
package winner
