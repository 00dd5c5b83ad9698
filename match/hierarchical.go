package match

// Hierarchical runs one [Greedy] pass per threshold, in the given order.
//
// Both used sets start empty on every call and grow with each pass, so a pass
// only sees rows that no earlier pass matched. The result lists the pairs of
// the first threshold first; within a pass pairs follow the index order of a.
// The threshold of [WithThreshold] is ignored.
func Hierarchical(a, b [][]float64, thresholds []float64, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)

	used1 := NewUsedSet()
	used2 := NewUsedSet()

	var total Result

	for pass, th := range thresholds {
		res, err := greedy(a, b, used1, used2, th, cfg)
		if err != nil {
			return Result{}, err
		}

		for _, ip := range res.Indices {
			used1.Add(ip.I)
		}
		total.append(res)

		cfg.logger.Debug("match pass completed",
			"pass", pass,
			"threshold", th,
			"pairs", res.Len(),
			"total", total.Len(),
		)
	}

	return total, nil
}
