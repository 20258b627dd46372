// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generator

// Gendered first names for first_name with a gender constraint.
var (
	maleFirstNames = []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
		"Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark", "Steven", "Andrew",
		"Joshua", "Kevin", "Brian", "George", "Ethan", "Lucas", "Noah", "Liam",
	}
	femaleFirstNames = []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
		"Sarah", "Karen", "Nancy", "Lisa", "Emily", "Michelle", "Laura", "Olivia",
		"Emma", "Sophia", "Ava", "Isabella", "Mia", "Chloe", "Grace", "Hannah",
	}
)
