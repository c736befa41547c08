package issue

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseLines expands an impacted-lines spec like "12", "10-12", "3,7,9" or
// "11-13,17" into individual line numbers. Unparsable parts (including the
// "+N more" marker of a truncated spec) are skipped.
func ParseLines(s string) []int {
	var lines []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if a, b, ok := strings.Cut(part, "-"); ok {
			start, err1 := strconv.Atoi(a)
			end, err2 := strconv.Atoi(b)
			if err1 != nil || err2 != nil || start > end {
				continue
			}
			for n := start; n <= end; n++ {
				lines = append(lines, n)
			}
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			lines = append(lines, n)
		}
	}
	return lines
}

// CompressLines renders line numbers as compact sorted ranges:
// [1,2,3,7,9,10] -> "1-3,7,9-10". Duplicates are dropped.
func CompressLines(nums []int) string {
	if len(nums) == 0 {
		return ""
	}
	uniq := uniqueSorted(nums)
	var out []string
	start, prev := uniq[0], uniq[0]
	flush := func() {
		if start == prev {
			out = append(out, strconv.Itoa(start))
		} else {
			out = append(out, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, x := range uniq[1:] {
		if x == prev+1 {
			prev = x
			continue
		}
		flush()
		start, prev = x, x
	}
	flush()
	return strings.Join(out, ",")
}

// FirstLine extracts the first line number of a spec ("10-22" -> 10,
// "12,+3 more" -> 12). Returns 0 when no leading number is present.
func FirstLine(spec string) int {
	head, _, _ := strings.Cut(spec, ",")
	head, _, _ = strings.Cut(head, "-")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0
	}
	return n
}

// FormatLine renders a single line number.
func FormatLine(n int) string { return strconv.Itoa(n) }

// FormatRange renders a contiguous start-end range.
func FormatRange(start, end int) string { return fmt.Sprintf("%d-%d", start, end) }

// FormatSet renders a collection of lines as a sorted, deduplicated comma
// list.
func FormatSet(nums []int) string {
	parts := make([]string, 0, len(nums))
	for _, n := range uniqueSorted(nums) {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ",")
}

func uniqueSorted(nums []int) []int {
	seen := make(map[int]struct{}, len(nums))
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
