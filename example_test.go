package miet_test

import (
	"context"
	"fmt"
	"log"

	miet "github.com/gipersonic/miet"
	"github.com/gipersonic/miet/pkg/domain"
)

// Example shows the minimal embedding loop: build an engine over a
// catalog source and feed it user messages.
func Example() {
	eng, err := miet.New(staticCatalog{})
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	render, err := eng.Handle(ctx, domain.Event{UserID: "student", Text: "restart"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(render.Text)
	for _, choice := range render.Choices {
		fmt.Println("-", choice)
	}

	// Output:
	// Hi! Choose a subject:
	// - Math
	// - Physics
	// - main menu
}
