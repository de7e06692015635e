// Package numeral implements the mixed-radix numeral model.
//
// A numeral is a tuple of place values (d_0, ..., d_{P-1}) with
// 0 <= d_i < b_i for a radix vector B = (b_0, ..., b_{P-1}). Pack and
// Unpack are mutually inverse bijections between numerals and their
// linear index in [0, N), where N = product(B).
//
// Both directions are total on their domains and cannot fail; callers
// are responsible for keeping indices and digits in range (the crawler
// and successor table builder never call these outside that range).
package numeral
