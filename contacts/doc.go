// Package contacts implements an address book keyed by "Last, First" names, stored in an ordered tree map.
//
// Each contact maps to a set of communication methods (email, mobile number, social handles, and so on), which can be parsed from short free-text descriptions like "email: me@example.com, m: 555-0100".
package contacts
