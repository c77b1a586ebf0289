package a

var snake_count = 1 // want "identifier 'snake_count' is not in camel case"

var okCount = 2

const MAX_RETRY_COUNT = 3

type user_record struct { // want "identifier 'user_record' is not in camel case"
	first_name string // want "identifier 'first_name' is not in camel case"
	LastName   string
}

type Widget struct{}

func (w *Widget) render_frame() {} // want "identifier 'render_frame' is not in camel case"

func process_batch(batch_size int) { // want "identifier 'process_batch' is not in camel case" "identifier 'batch_size' is not in camel case"
	item_count := batch_size // want "identifier 'item_count' is not in camel case"

retry_loop: // want "identifier 'retry_loop' is not in camel case"
	for i := 0; i < item_count; i++ {
		break retry_loop
	}
}

func compute() (grand_total int) { // want "identifier 'grand_total' is not in camel case"
	grand_total = 7
	return
}

func localDecls() {
	var local_total int // want "identifier 'local_total' is not in camel case"
	local_total = 1
	_ = local_total
}

func __privateHelper() int {
	return okCount
}
