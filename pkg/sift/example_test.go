package sift_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/crimson-sun/sift/pkg/sift"
)

func ExampleEvaluate() {
	corpus := strings.NewReader(
		"4,1,Mon,NO_QUERY,what a great day\n" +
			"0,2,Mon,NO_QUERY,worst commute ever\n" +
			"4,3,Tue,NO_QUERY,loved the show\n" +
			"0,4,Tue,NO_QUERY,everything is broken\n")

	summary, err := sift.Evaluate(corpus, sift.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("train=%d test=%d\n", summary.Train.Samples, summary.Test.Samples)
	// Output: train=2 test=2
}
