package utils

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// Distinct 去除重复元素，保留元素第一次出现的顺序
func Distinct[T comparable](list []T) []T {
	seen := hashset.New()
	answer := make([]T, 0, len(list))
	for _, value := range list {
		if seen.Contains(value) {
			continue
		}
		seen.Add(value)
		answer = append(answer, value)
	}
	return answer
}
