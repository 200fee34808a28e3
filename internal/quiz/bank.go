// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quiz

// DefaultBank returns the built-in question bank, used when no bank
// file is configured. It covers process-scheduling fundamentals.
func DefaultBank() *Bank {
	return &Bank{
		Questions: []Question{
			{
				Prompt: "What is the primary goal of a scheduling system in an operating system?",
				Options: []string{
					"To minimize CPU utilization",
					"To make full use of CPU cycles during I/O wait times",
					"To increase I/O wait times",
					"To reduce the time needed for context switching",
				},
				Answer: "To make full use of CPU cycles during I/O wait times",
			},
			{
				Prompt: "What does a typical CPU-I/O burst cycle involve?",
				Options: []string{
					"Alternating between CPU execution and memory storage",
					"Alternating between CPU calculations and I/O wait times",
					"Continuous CPU calculations only",
					"Continuous I/O wait times only",
				},
				Answer: "Alternating between CPU calculations and I/O wait times",
			},
			{
				Prompt: "Where are all processes stored upon entering the system?",
				Options: []string{
					"Ready Queue",
					"Job Queue",
					"Waiting Queue",
					"Device Queue",
				},
				Answer: "Job Queue",
			},
			{
				Prompt: "What is the main function of the long-term scheduler?",
				Options: []string{
					"To manage the job queue by loading processes into memory for execution",
					"To handle device requests in the waiting queue",
					"To control I/O processes only",
					"To schedule jobs directly to the CPU",
				},
				Answer: "To manage the job queue by loading processes into memory for execution",
			},
		},
	}
}
