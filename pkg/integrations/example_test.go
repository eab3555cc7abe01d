package integrations_test

import (
	"fmt"

	"github.com/bio-traven/karyoploteR/pkg/integrations"
)

func Example_errors() {
	// Standard errors for remote data operations
	fmt.Println("ErrNotFound:", integrations.ErrNotFound)
	fmt.Println("ErrNetwork:", integrations.ErrNetwork)
	// Output:
	// ErrNotFound: resource not found
	// ErrNetwork: network error
}
