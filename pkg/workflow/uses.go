package workflow

// position is where a node is located in a workflow or action file.
type position int

const (
	positionOther position = iota
	positionJobs
	positionJob
	positionSteps
	positionStep
)

func childPosition(parent position, key string) position {
	if parent == positionJobs {
		return positionJob
	}
	switch key {
	case "jobs":
		return positionJobs
	case "steps":
		return positionSteps
	default:
		return positionOther
	}
}

// FindUses returns `uses` pairs of steps and jobs in document order.
// A step is an item of a `steps` sequence, which covers both workflow jobs
// and composite actions. A job is a value of the `jobs` mapping, which may
// call a reusable workflow.
// `uses` keys in other mappings such as `with` or `inputs` are ignored.
func FindUses(roots []Node) []*Pair {
	pairs := []*Pair{}
	for _, root := range roots {
		pairs = findUses(pairs, root, positionOther)
	}
	return pairs
}

func findUses(pairs []*Pair, n Node, pos position) []*Pair {
	switch node := n.(type) {
	case *Mapping:
		for _, pair := range node.Pairs {
			if pair.Key == "uses" && (pos == positionJob || pos == positionStep) {
				pairs = append(pairs, pair)
				continue
			}
			pairs = findUses(pairs, pair.Value, childPosition(pos, pair.Key))
		}
	case *Sequence:
		itemPos := positionOther
		if pos == positionSteps {
			itemPos = positionStep
		}
		for _, item := range node.Items {
			pairs = findUses(pairs, item, itemPos)
		}
	}
	return pairs
}
