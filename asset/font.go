package asset

// DefaultFont is the built-in banner font in bracket text format.
// Rows use '*' for ink and '.' as filler; every glyph is 5 rows high
const DefaultFont = `

[A]
.***.
*...*
*****
*...*
*...*

[B]
****.
*...*
****.
*...*
****.

[C]
.****
*....
*....
*....
.****

[D]
****.
*...*
*...*
*...*
****.

[E]
*****
*....
****.
*....
*****

[F]
*****
*....
****.
*....
*....

[G]
.****
*....
*..**
*...*
.****

[H]
*...*
*...*
*****
*...*
*...*

[I]
***
.*.
.*.
.*.
***

[J]
..***
...*.
...*.
*..*.
.**..

[K]
*...*
*..*.
***..
*..*.
*...*

[L]
*....
*....
*....
*....
*****

[M]
*...*
**.**
*.*.*
*...*
*...*

[N]
*...*
**..*
*.*.*
*..**
*...*

[O]
.***.
*...*
*...*
*...*
.***.

[P]
****.
*...*
****.
*....
*....

[Q]
.***.
*...*
*.*.*
*..*.
.**.*

[R]
****.
*...*
****.
*..*.
*...*

[S]
.****
*....
.***.
....*
****.

[T]
*****
..*..
..*..
..*..
..*..

[U]
*...*
*...*
*...*
*...*
.***.

[V]
*...*
*...*
*...*
.*.*.
..*..

[W]
*...*
*...*
*.*.*
**.**
*...*

[X]
*...*
.*.*.
..*..
.*.*.
*...*

[Y]
*...*
.*.*.
..*..
..*..
..*..

[Z]
*****
...*.
..*..
.*...
*****


[0]
.***.
*..**
*.*.*
**..*
.***.

[1]
.*.
**.
.*.
.*.
***

[2]
.***.
*...*
..**.
.*...
*****

[3]
****.
....*
.***.
....*
****.

[4]
*...*
*...*
*****
....*
....*

[5]
*****
*....
****.
....*
****.

[6]
.***.
*....
****.
*...*
.***.

[7]
*****
....*
...*.
..*..
..*..

[8]
.***.
*...*
.***.
*...*
.***.

[9]
.***.
*...*
.****
....*
.***.


[!]
*
*
*
.
*

[?]
.***.
*...*
..**.
.....
..*..

[.]
.
.
.
.
*

[,]
..
..
..
.*
*.

[-]
.....
.....
*****
.....
.....

[:]
.
*
.
*
.

[+]
.....
..*..
*****
..*..
.....

[/]
....*
...*.
..*..
.*...
*....

[=]
.....
*****
.....
*****
.....

`
