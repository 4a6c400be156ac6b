package orchestratornode

const (
	NodeExtractLatestTurn  = "extract_latest_turn"
	NodeClassifyIntent     = "classify_intent"
	NodeDispatchSpecialist = "dispatch_specialist"
	NodeFinalizeReply      = "finalize_reply"
	NodeCannedReply        = "canned_reply"
)

// NextAfterExtract skips the model entirely when there is nothing to answer.
func NextAfterExtract(in *GraphState) (string, error) {
	if in == nil {
		return "", ErrNilState
	}
	if !in.HasUserTurn {
		return NodeCannedReply, nil
	}
	return NodeClassifyIntent, nil
}
