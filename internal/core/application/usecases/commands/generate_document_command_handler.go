package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// PipelineReader loads the joined stage records of an order.
type PipelineReader interface {
	Handle(ctx context.Context, query queries.GetPipelineQuery) (queries.Pipeline, error)
}

// GeneratedDocument is a composed document and its archive entry. Previous
// is the last issuance of the same file, nil on the first one.
type GeneratedDocument struct {
	Handle   document.Handle
	Record   *document.Record
	Previous *document.Record
}

// IsReprint reports whether the same file was issued before with unchanged
// order and package data.
func (d GeneratedDocument) IsReprint() bool {
	return d.Previous != nil
}

// GenerateDocumentCommandHandler composes invoices and package labels.
//
// Generation reads the pipeline (a missing order aborts, missing stages are
// printed as N/A), aggregates the packages, encodes and renders the barcode,
// composes the file and archives the issuance in one transaction. A failed
// archive write fails the generation: a document is never handed out
// without its issuance record.
type GenerateDocumentCommandHandler struct {
	pipeline   PipelineReader
	renderer   ports.BarcodeRenderer
	composer   ports.DocumentComposer
	uowFactory DocumentUoWFactory
	company    document.Company
	now        func() time.Time

	aggregator services.PackageAggregator
	encoder    services.BarcodePayloadEncoder
}

func NewGenerateDocumentCommandHandler(
	pipeline PipelineReader,
	renderer ports.BarcodeRenderer,
	composer ports.DocumentComposer,
	uowFactory DocumentUoWFactory,
	company document.Company,
	now func() time.Time,
) GenerateDocumentCommandHandler {
	if now == nil {
		now = time.Now
	}
	return GenerateDocumentCommandHandler{
		pipeline:   pipeline,
		renderer:   renderer,
		composer:   composer,
		uowFactory: uowFactory,
		company:    company,
		now:        now,
		aggregator: services.NewPackageAggregator(),
		encoder:    services.NewBarcodePayloadEncoder(),
	}
}

func (h GenerateDocumentCommandHandler) Handle(ctx context.Context, cmd GenerateDocumentCommand) (GeneratedDocument, error) {
	if err := cmd.Validate(); err != nil {
		return GeneratedDocument{}, err
	}

	query, err := queries.NewGetPipelineQuery(cmd.OrderID(), cmd.Line())
	if err != nil {
		return GeneratedDocument{}, err
	}
	pipeline, err := h.pipeline.Handle(ctx, query)
	if err != nil {
		return GeneratedDocument{}, err
	}

	sections, err := h.sections(cmd, pipeline)
	if err != nil {
		return GeneratedDocument{}, err
	}
	handle, err := h.composer.Compose(sections)
	if err != nil {
		return GeneratedDocument{}, err
	}

	record, err := document.NewRecord(cmd.OrderID(), cmd.Kind(), handle, sections.Barcode.Payload, sections.IssuedAt)
	if err != nil {
		return GeneratedDocument{}, err
	}
	previous, err := h.archive(ctx, record)
	if err != nil {
		return GeneratedDocument{}, err
	}

	return GeneratedDocument{
		Handle:   handle,
		Record:   record,
		Previous: previous,
	}, nil
}

func (h GenerateDocumentCommandHandler) sections(cmd GenerateDocumentCommand, p queries.Pipeline) (document.Sections, error) {
	aggregate := h.aggregator.Aggregate(p.Order, p.Packages)

	details := aggregate.Details()
	number := "INV-" + cmd.OrderID().String()
	if cmd.Kind() == document.Label {
		row, err := labelRow(aggregate, cmd.Sequence())
		if err != nil {
			return document.Sections{}, err
		}
		details = []packaging.Detail{row.Detail}
		number = fmt.Sprintf("LBL-%s-%d", cmd.OrderID(), row.Sequence)
	}

	payload := h.encoder.Encode(p.Order, details)
	png, err := h.renderer.Render(payload)
	if err != nil {
		return document.Sections{}, err
	}

	var units []string
	if p.Production != nil && p.Production.Unit() != "" {
		units = []string{p.Production.Unit()}
	}

	return document.Sections{
		Kind:          cmd.Kind(),
		Number:        number,
		IssuedAt:      h.now().UTC().Truncate(time.Second),
		Company:       h.company,
		Order:         p.Order,
		Production:    p.Production,
		Packages:      aggregate,
		Delivery:      p.Delivery,
		Units:         units,
		Totals:        document.ComputeTotals(p.Order.Subtotal()),
		Barcode:       document.Barcode{Payload: payload, PNG: png},
		LabelSequence: cmd.Sequence(),
	}, nil
}

func labelRow(aggregate packaging.Aggregate, sequence int) (packaging.Row, error) {
	if aggregate.IsEmpty() {
		return packaging.Row{}, errs.NewCompositionError(document.Label.String(), "order has no package details")
	}
	row, ok := aggregate.Row(sequence)
	if !ok {
		return packaging.Row{}, errs.NewCompositionErrorWithCause(
			document.Label.String(),
			"package does not exist",
			errs.NewValueIsOutOfRangeError("package sequence", sequence, 1, len(aggregate.Rows)),
		)
	}
	return row, nil
}

// archive stores record and returns the latest earlier issuance of the same
// file with the same barcode payload. The checksum cannot serve here: the
// issue time is printed on every page.
func (h GenerateDocumentCommandHandler) archive(ctx context.Context, record *document.Record) (*document.Record, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DocumentRepository()
	history, err := repo.ListByOrder(ctx, record.OrderID())
	if err != nil {
		return nil, err
	}
	var previous *document.Record
	for _, r := range history {
		if r.IsReprintedBy(record) {
			previous = r
			break
		}
	}

	if err = repo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return previous, nil
}
