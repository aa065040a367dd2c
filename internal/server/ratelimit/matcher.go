package ratelimit

import "strings"

// unlimited marks an endpoint that is never throttled.
var unlimited = Rule{}

// match resolves the rule for a request. Health checks are never throttled.
// Exact path matches win over prefix rules; nil means no specific rule.
func match(path, method string, rules []Rule) *Rule {
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range rules {
		rule := &rules[i]
		if rule.Method == method && rule.Path == path {
			return rule
		}
	}

	for i := range rules {
		rule := &rules[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}

	return nil
}
