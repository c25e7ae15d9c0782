// Package starscope classifies collections of starred GitHub repositories.
//
// Two independent strategies are exposed over the same record type:
//
//	repos := []starscope.Repo{{Name: "flask", Description: "A web framework"}}
//
//	report, _ := starscope.ClassifyRepos(repos)          // keyword rules, 3 axes
//	groups, _ := starscope.ClusterRepos(repos,           // TF-IDF + k-means
//	    starscope.WithClusterCount(5))
//
// Both return an ordered *Table: a column header plus one row per input
// record, in input order. ClassifyRepos never fails on record content;
// ClusterRepos reports configuration errors (empty vocabulary, too many
// clusters) before producing any output.
package starscope
