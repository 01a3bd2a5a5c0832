package hyphen

// German hyphenation patterns (excerpt). German compounds hyphenate
// along morpheme boundaries, which the affix patterns below capture
// for the common cases.

const patternsDeDE = `
1tu 1ch 1sch be1 ge1 ver1 zer1 ab1 an3d 1bu
1da 1do 1dr 1fa 1fe 4m1b 1mu s1p 4s3w 1wa
`

const exceptionsDeDE = ``
