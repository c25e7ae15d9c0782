package starscope_test

import (
	"fmt"
	"log"

	"github.com/crimson-sun/starscope/pkg/starscope"
)

func ExampleClassifyRepos() {
	repos := []starscope.Repo{{
		Name:        "flask",
		FullName:    "pallets/flask",
		Description: "A lightweight web application framework",
		Language:    "Python",
	}}

	table, err := starscope.ClassifyRepos(repos)
	if err != nil {
		log.Fatal(err)
	}

	row := table.Rows[0]
	fmt.Println(row[0], row[1], row[2])
	// Output: Web Framework Flask
}
