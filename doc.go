// a minimal interpreter for a Scheme-like expression language
//
// one call reads one S-expression, evaluates it against a fixed global
// environment and prints the result:
//
//   (list-ref (list 10 20 30) 1)   =>  20
//   (car '(1 . 2))                 =>  1
//   (and 1 #f (foo))               =>  #f
//
// there is no define, lambda or mutation. integers are 64-bit and wrap on
// overflow.
//
// BNF:
//  <expr>            :: <integer> | <symbol> | <list> | <quoted> ;
//
//  <quoted>          :: "'" <expr> ;
//
//  <list>            :: "(" ")" | "(" <expr>+ ")" | "(" <expr>+ "." <expr> ")" ;
//
//  <integer>         :: ( "+" | "-" )? <decimal-digit>+ ;
//  <decimal-digit>   :: "0" | ... | "9" ;
//
//  <symbol>          :: "+" | "-" | <symbol-start> <symbol-char>* ;
//  <symbol-start>    :: <alpha> | "<" | "=" | ">" | "*" | "/" | "#" ;
//  <symbol-char>     :: <symbol-start> | <decimal-digit> | "?" | "!" | "-" ;
//  <alpha>           :: "a" | ... | "z" | "A" | ... | "Z" ;
//
//  <whitespace-char> :: " " | "\t" | "\r" | "\n" ;
//
// any other character is a syntax error. a sign directly followed by a digit
// is always the start of an integer, so "(+1)" is a call of 1, not of +.
//
// built-ins:
//   + - * /  = < > <= >=  max min abs
//   number? boolean? pair? null? list? not
//   cons car cdr list list-ref list-tail
//   quote and or  #t #f

package scheme
