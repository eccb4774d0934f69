// Package password generates random passwords from a secure random source.
//
// A password is described by a Spec: its length, the character classes it
// may draw from and whether visually ambiguous characters are excluded. The
// enabled classes are merged into a Pool and every position of the result is
// picked independently and uniformly from that pool using rejection
// sampling, so no character is favoured by modulo bias.
//
// A Spec may also carry a Composition, which asks for an exact number of
// digits and symbols instead of uniform selection. That mode is delegated to
// github.com/sethvargo/go-password, fed with the same filtered alphabets and
// the same random source.
package password
