package hyphen

// Spanish hyphenation patterns (excerpt). Like French, Spanish breaks
// before a single consonant between vowels; digraphs and consonant
// clusters get their own rules.

const patternsEsES = `
1b 1c 1d 1f 1g 1j 1l 1m 1ñ 1p 1q 1r 1s 1t 1v 1z
2ch 2ll 4rr2 2s1t 2s1c
`

const exceptionsEsES = ``
