package b

var opt_snakeValue = 1

var opt_two_parts = 2 // want "identifier 'opt_two_parts' is not in camel case"

var legacy_name = 3
