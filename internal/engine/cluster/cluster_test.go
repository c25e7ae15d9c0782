package cluster

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/crimson-sun/starscope/internal/model"
)

func clusterRepos() []model.Repo {
	return []model.Repo{
		{Name: "bevy", FullName: "a/bevy", Description: "rust game engine renderer", Language: "Rust"},
		{Name: "fyrox", FullName: "a/fyrox", Description: "rust game engine renderer", Language: "Rust"},
		{Name: "godette", FullName: "a/godette", Description: "rust game engine scripting", Language: "Rust"},
		{Name: "chakra", FullName: "b/chakra", Description: "react frontend component toolkit", Language: "TypeScript"},
		{Name: "mantine", FullName: "b/mantine", Description: "react frontend component toolkit", Language: "TypeScript"},
		{Name: "radix", FullName: "b/radix", Description: "react frontend component primitives", Language: "TypeScript"},
	}
}

func TestClassifyPartition(t *testing.T) {
	c := New(WithK(2), WithMinDF(2), WithMaxDF(1.0))
	table, err := c.Classify(clusterRepos())
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if len(table.Rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(table.Rows))
	}

	ids, _ := table.Column("Cluster")
	for i, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil || n < 0 || n >= 2 {
			t.Errorf("row %d cluster id %q not in [0,2)", i, id)
		}
	}
}

func TestClassifyIdenticalDescriptionsSameCluster(t *testing.T) {
	c := New(WithK(2), WithMinDF(2), WithMaxDF(1.0))
	table, err := c.Classify(clusterRepos())
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	ids, _ := table.Column("Cluster")
	if ids[0] != ids[1] {
		t.Errorf("records with identical descriptions in clusters %s and %s", ids[0], ids[1])
	}
	if ids[3] != ids[4] {
		t.Errorf("records with identical descriptions in clusters %s and %s", ids[3], ids[4])
	}
}

func TestClassifyReproducible(t *testing.T) {
	repos := clusterRepos()
	first, err := New(WithK(2), WithMinDF(2), WithMaxDF(1.0)).Classify(repos)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(WithK(2), WithMinDF(2), WithMaxDF(1.0)).Classify(repos)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed, k, and input order produced different tables")
	}
}

func TestClassifyDescriptorSharedByCluster(t *testing.T) {
	c := New(WithK(2), WithMinDF(2), WithMaxDF(1.0))
	table, err := c.Classify(clusterRepos())
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := table.Column("Cluster")
	terms, _ := table.Column("Cluster Terms")
	byID := map[string]string{}
	for i, id := range ids {
		if prev, ok := byID[id]; ok && prev != terms[i] {
			t.Errorf("cluster %s has two descriptors: %q vs %q", id, prev, terms[i])
		}
		byID[id] = terms[i]
		if terms[i] == "" {
			t.Errorf("row %d has an empty descriptor", i)
		}
	}
}

func TestClassifyConfigErrors(t *testing.T) {
	repos := clusterRepos()

	// k exceeding the number of distinct documents.
	if _, err := New(WithK(100)).Classify(repos); err == nil {
		t.Error("expected error for k > distinct documents")
	}

	// k below 1.
	if _, err := New(WithK(0)).Classify(repos); err == nil {
		t.Error("expected error for k=0")
	}

	// Vocabulary collapse must surface ErrEmptyVocabulary, not an empty result.
	unique := []model.Repo{
		{Name: "alpha", Description: "uniquewordone"},
		{Name: "beta", Description: "uniquewordtwo"},
	}
	_, err := New(WithK(1), WithMinDF(2)).Classify(unique)
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("err = %v, want ErrEmptyVocabulary", err)
	}
}

func TestClassifyColumns(t *testing.T) {
	want := []string{"Cluster", "Cluster Terms", "Repository", "Description", "Language", "URL"}
	c := New(WithK(1), WithMinDF(1), WithMaxDF(1.0))
	table, err := c.Classify([]model.Repo{{Name: "solo", Description: "lonely record"}})
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("Columns = %v, want %v", table.Columns, want)
	}

	row := table.Rows[0]
	if row[4] != "Unknown" {
		t.Errorf("Language = %q, want Unknown", row[4])
	}
}
