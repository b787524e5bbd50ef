// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"fmt"
	"time"

	"gonih.org/chronofmt/gregorian"
)

// ExampleOf demonstrates some useful patterns when using Of.
func ExampleOf() {
	// Create a fixed date:
	d := gregorian.Of(2023, 12, 31)
	fmt.Println(d)

	// Dates are normalized:
	d = gregorian.Of(2023, 12, 40)
	fmt.Println(d)

	// Get the Date of a time.Time:
	t := time.Date(2024, 1, 10, 13, 24, 42, 0, time.UTC)
	d = gregorian.Of(t.Date())
	fmt.Println(d)

	// Get the Date from a unix timestamp.
	// Note that time.Unix returns a local time, for reproducibility, we
	// convert it to UTC:
	d = gregorian.Of(time.Unix(1672528154, 0).UTC().Date())
	fmt.Println(d)

	// Output:
	// 2023-12-31
	// 2024-01-09
	// 2024-01-10
	// 2022-12-31
}

// Example_diffDates demonstrates how to check if two dates differ by a given
// amount.
func Example_diffDates() {
	// When comparing by number of days, we can just check their difference:
	if d1, d2 := gregorian.Of(2024, 3, 5), gregorian.Of(2024, 2, 5); d2-d1 < 31 {
		fmt.Printf("%v and %v are less than 31 days apart.\n", d1, d2)
	}

	// However, if we want to check if they are a month apart, we have to be careful:
	if d1, d2 := gregorian.Of(2024, 3, 5), gregorian.Of(2024, 2, 5); d2-d1 >= 30 {
		// Does not print.
		fmt.Printf("%v and %v are at least 30 days apart.\n", d1, d2)
	}
	// Instead, we use AddDate:
	if d1, d2 := gregorian.Of(2024, 3, 5), gregorian.Of(2024, 2, 5); d1.AddDate(0, 1, 0) >= d2 {
		fmt.Printf("%v and %v are at least a month apart.\n", d1, d2)
	}

	// Similarly, we need to be careful when comparing years:
	if d1, d2 := gregorian.Of(2024, 2, 5), gregorian.Of(2025, 2, 5); d2-d1 <= 365 {
		// Does not print.
		fmt.Printf("%v and %v are at most 365 days apart.\n", d1, d2)
	}
	// Instead, we again use AddDate:
	if d1, d2 := gregorian.Of(2024, 2, 5), gregorian.Of(2025, 2, 5); d1.AddDate(1, 0, 0) <= d2 {
		fmt.Printf("%v and %v are at most a year apart.\n", d1, d2)
	}

	// Output:
	// 2024-03-05 and 2024-02-05 are less than 31 days apart.
	// 2024-03-05 and 2024-02-05 are at least a month apart.
	// 2024-02-05 and 2025-02-05 are at most a year apart.
}

// ExampleParse demonstrates Parse with this package's built-in formatters,
// and shows how an out-of-domain field fails the parse.
func ExampleParse() {
	fmt.Println(gregorian.Parse(gregorian.RFC3339, "2024-05-14"))
	fmt.Println(gregorian.Parse(gregorian.Long, "Wednesday, June 3, 2009"))

	// Month 13 is outside Month's domain (1-12), so the numeric element
	// itself rejects it.
	_, err := gregorian.Parse(gregorian.RFC3339, "2024-13-01")
	fmt.Println(err)

	// Output:
	// 2024-05-14 <nil>
	// 2009-06-03 <nil>
	// chronofmt: parsing "2024-13-01": mismatch at index 5
}
