package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Default returns the load, index and publish stages in order.
func Default() *Pipeline {
	return New(&LoadProcessor{}, &IndexProcessor{}, &PublishProcessor{})
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors: later stages skip whatever an earlier stage
		// failed to produce and still report their own problems.
	}
	return ctx
}
