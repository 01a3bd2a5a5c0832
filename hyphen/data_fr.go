package hyphen

// French hyphenation patterns (excerpt). French breaks before single
// consonants between vowels, which most of these patterns express.

const patternsFrFR = `
1b 1c 1d 1f 1g 1h 1j 1k 1l 1m 1p 1q 1s 1t 1v
n1j 2ck 4ge. 1gn 2jk d1s
`

const exceptionsFrFR = ``
