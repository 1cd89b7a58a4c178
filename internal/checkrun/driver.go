package checkrun

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dshills/checklint/internal/annotate"
	"github.com/dshills/checklint/internal/github"
	"github.com/dshills/checklint/internal/trigger"
)

// Service is the subset of the checks API the driver drives.
type Service interface {
	CreateCheckRun(ctx context.Context, owner, repo string, params github.CheckRunParams) (int64, error)
	UpdateCheckRun(ctx context.Context, owner, repo string, id int64, params github.CheckRunParams) error
}

// Driver owns one check run's lifecycle: a single create, strictly ordered
// batch updates, and exactly-once terminal finalization. All calls for the
// same run happen on one sequential chain; the check is never left in_progress
// when Publish returns, success or failure.
type Driver struct {
	svc Service
	log *logrus.Logger
}

// New creates a Driver. A nil logger defaults to the logrus standard logger.
func New(svc Service, log *logrus.Logger) *Driver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Driver{svc: svc, log: log}
}

// Publish drives the remote check run to completion.
//
// With zero batches the create call itself carries the completed status and
// the verdict; no updates follow. Otherwise the run is created in_progress so
// reviewers see the check underway, then each batch is applied in order, the
// last update carrying the completed status and conclusion. A failed batch
// update triggers a forced-failure finalization with empty annotations, after
// which the original error is returned.
func (d *Driver) Publish(ctx context.Context, run trigger.RunContext, verdict annotate.Verdict, batches [][]annotate.Annotation, body string) error {
	output := github.CheckOutput{
		Title:   run.CheckName,
		Summary: verdict.Summary,
		Text:    body,
	}

	if len(batches) == 0 {
		_, err := d.svc.CreateCheckRun(ctx, run.Owner, run.Repo, github.CheckRunParams{
			Name:       run.CheckName,
			HeadSHA:    run.HeadSHA,
			Status:     github.StatusCompleted,
			Conclusion: verdict.Conclusion,
			Output:     &output,
		})
		if err != nil {
			return err
		}
		d.log.WithField("conclusion", verdict.Conclusion).Info("check run completed with no annotations")
		return nil
	}

	id, err := d.svc.CreateCheckRun(ctx, run.Owner, run.Repo, github.CheckRunParams{
		Name:    run.CheckName,
		HeadSHA: run.HeadSHA,
		Status:  github.StatusInProgress,
	})
	if err != nil {
		// Nothing exists remotely; there is no resource to finalize.
		return err
	}
	d.log.WithFields(logrus.Fields{"id": id, "batches": len(batches)}).Debug("check run created")

	for i, batch := range batches {
		params := github.CheckRunParams{
			Status: github.StatusInProgress,
			Output: &github.CheckOutput{
				Title:       run.CheckName,
				Summary:     verdict.Summary,
				Text:        body,
				Annotations: batch,
			},
		}
		if i == len(batches)-1 {
			params.Status = github.StatusCompleted
			params.Conclusion = verdict.Conclusion
		}

		if err := d.svc.UpdateCheckRun(ctx, run.Owner, run.Repo, id, params); err != nil {
			return d.finalizeAfterFailure(ctx, run, id, err)
		}
		d.log.WithFields(logrus.Fields{"batch": i + 1, "annotations": len(batch)}).Debug("batch applied")
	}

	d.log.WithFields(logrus.Fields{"id": id, "conclusion": verdict.Conclusion}).Info("check run completed")
	return nil
}

// finalizeAfterFailure forces the run to a terminal failure state. The
// mid-failure annotation state is not reliably reconstructable, so the
// finalizing update carries none. The original cause is returned once the
// finalize succeeds; if finalization itself fails, its error is returned
// wrapping the cause and no further attempts are made.
func (d *Driver) finalizeAfterFailure(ctx context.Context, run trigger.RunContext, id int64, cause error) error {
	params := github.CheckRunParams{
		Status:     github.StatusCompleted,
		Conclusion: annotate.ConclusionFailure,
		Output: &github.CheckOutput{
			Title:   run.CheckName,
			Summary: "check run could not be fully reported",
		},
	}
	if ferr := d.svc.UpdateCheckRun(ctx, run.Owner, run.Repo, id, params); ferr != nil {
		return fmt.Errorf("finalizing check run after failed update: %v (caused by: %w)", ferr, cause)
	}
	d.log.WithField("id", id).Warn("check run finalized as failure after batch error")
	return cause
}
