// Package savefile is the reference save collaborator used by the saveconv CLI.
//
// Wii U saves store every 32-bit word big-endian and Switch saves store them
// little-endian. Detection reads the leading version word of option.sav, whose
// value always fits in 16 bits when decoded in the platform's native order.
// Conversion reverses the byte order of every word in place, which is its own
// inverse, so the same transform serves both directions.
//
// The transform knows nothing about field types. Fields that the game stores
// as raw byte strings rather than words are reversed along with everything
// else, so Converter is only as faithful as a plain word swap of the whole file.
package savefile
