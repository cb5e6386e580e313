package findings

// Finding is one suspected untranslated string occurrence.
type Finding struct {
	FilePath string `json:"file"`
	Line     int    `json:"line"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	FullLine string `json:"full_line"`
}

// Group is an ordered bucket of findings sharing a key (rule name or file path).
type Group struct {
	Key      string
	Findings Collection
}

// FileCount is the number of findings attributed to one file.
type FileCount struct {
	FilePath string `json:"file"`
	Count    int    `json:"count"`
}

// Collection is the run-wide, append-only list of findings.
type Collection []Finding

// GroupByType buckets findings by rule name in first-seen order.
func (c Collection) GroupByType() []Group {
	return c.groupBy(func(f Finding) string { return f.Type })
}

// GroupByFile buckets findings by file path in first-seen order.
func (c Collection) GroupByFile() []Group {
	return c.groupBy(func(f Finding) string { return f.FilePath })
}

// CountByFile returns per-file totals in first-seen order.
func (c Collection) CountByFile() []FileCount {
	groups := c.GroupByFile()
	counts := make([]FileCount, 0, len(groups))
	for _, g := range groups {
		counts = append(counts, FileCount{FilePath: g.Key, Count: len(g.Findings)})
	}
	return counts
}

func (c Collection) groupBy(key func(Finding) string) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, f := range c {
		k := key(f)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Findings = append(groups[i].Findings, f)
	}
	return groups
}
