package hyphen

// An excerpt of Liang's hyphenation patterns for American English, as
// distributed with TeX (hyphen.tex). The full table has ≈4500
// patterns; this subset covers common affixes and letter clusters.

const patternsEnUS = `
.ach4 .ad4der .af1t .al3t .am5at .an5c .ang4 .ant4 .an3te
4ab. a5bal abe2 ab5erd ba4z 2b1b b2be b3ber 1ba 1be
1ca 4ced. 1co co4gr 1cu 1de de4bon 4den. 1di 4du.
2ed. 4ely. ex1 1fa 4fy. g1g 1gr 4ing. l1l 4ly.
1ma 2mis 1mo 1pa p1p 1pr r1r 2ss s1sa 4th.
t1t 1tur 4tu1ra u1v 1ves x1a y1b z1er
hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n
`

const exceptionsEnUS = `
as-so-ciate as-so-ciates dec-li-na-tion oblique phil-an-thropic
present presents project projects reci-procity re-cog-ni-zance
ref-or-ma-tion ret-ri-bu-tion ta-ble
`
