package abs_test

import (
	"context"
	"fmt"
	"log"

	"github.com/bft-labs/bikeabs/pkg/abs"
)

func Example() {
	cfg := abs.DefaultConfig()

	a, err := abs.New(cfg, abs.WithExternalInputs())
	if err != nil {
		log.Fatal(err)
	}

	if err := a.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
	if err := a.Stop(context.Background()); err != nil {
		log.Fatal(err)
	}

	fmt.Println("final state:", a.State())
	// Output: final state: Stopped
}
