package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/celestiaorg/instawp-action/internal/config"
	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/instawp"
	"github.com/celestiaorg/instawp-action/internal/logger"
	"github.com/celestiaorg/instawp-action/internal/types"
)

// OutputSink receives the step outputs
type OutputSink interface {
	SetOutput(name, value string)
}

// DeployResult is what a successful run published
type DeployResult struct {
	SiteURL       string
	MagicLoginURL string
	Outcome       *types.ProvisioningOutcome
}

// Deploy runs the requested action end to end
type Deploy struct {
	cfg          *config.Config
	workflow     types.WorkflowContext
	client       instawp.Client
	provisioning *Provisioning
	comments     *Comment
	outputs      OutputSink
}

// NewDeployService creates a new deploy service
func NewDeployService(
	cfg *config.Config,
	workflow types.WorkflowContext,
	client instawp.Client,
	provisioning *Provisioning,
	comments *Comment,
	outputs OutputSink,
) *Deploy {
	return &Deploy{
		cfg:          cfg,
		workflow:     workflow,
		client:       client,
		provisioning: provisioning,
		comments:     comments,
		outputs:      outputs,
	}
}

// Run validates the action and dispatches it. The first failing stage ends
// the run; sites that were already created are left in place.
func (d *Deploy) Run(ctx context.Context) (*DeployResult, error) {
	action, err := types.ParseAction(d.cfg.Action)
	if err != nil {
		return nil, err
	}

	switch action {
	case types.ActionCreateSiteTemplateGit:
		return d.createSiteTemplateGit(ctx)
	default:
		return nil, fmt.Errorf("%s %w.", action, types.ErrNotImplemented)
	}
}

// BuildRequest returns the create request for the current run
func (d *Deploy) BuildRequest() types.CreateSiteGitRequest {
	return types.CreateSiteGitRequest{
		TemplateSlug: d.cfg.TemplateSlug,
		SiteName:     SiteName(d.workflow.Owner, d.workflow.Repo, d.workflow.SHA),
		PRNum:        d.workflow.PullRequestNumber,
		RepoID:       d.cfg.RepoID,
		OverrideURL:  d.cfg.ArtifactURL,
	}
}

func (d *Deploy) createSiteTemplateGit(ctx context.Context) (*DeployResult, error) {
	if d.cfg.TemplateSlug == "" {
		return nil, errors.New(constants.InputTemplateSlug + " is required for " + string(types.ActionCreateSiteTemplateGit))
	}

	req := d.BuildRequest()
	logger.InfoWithFields("Creating site from template", map[string]interface{}{
		"template_slug": req.TemplateSlug,
		"site_name":     req.SiteName,
		"pr_num":        req.PRNum,
	})

	resp, err := d.client.CreateSiteGit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create site template: %w", err)
	}
	if resp.Data != nil && resp.Data.WPURL != "" {
		logger.Infof("Site template created at: %s", resp.Data.WPURL)
	}

	outcome, err := d.provisioning.WaitForSite(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to create site template: %w", err)
	}

	result := &DeployResult{
		SiteURL:       resp.Data.WPURL,
		MagicLoginURL: MagicLoginURL(resp.Data.SHash),
		Outcome:       outcome,
	}
	logger.InfoWithFields("Site created", map[string]interface{}{
		"url":     result.SiteURL,
		"task_id": outcome.TaskID,
		"polls":   outcome.Polls,
		"elapsed": outcome.Elapsed.String(),
	})

	d.outputs.SetOutput(constants.OutputInstaWPURL, result.SiteURL)
	d.outputs.SetOutput(constants.OutputMagicLoginURL, result.MagicLoginURL)

	body := CommentBody(result.SiteURL, result.MagicLoginURL)
	if err := d.comments.Reconcile(ctx, d.workflow.PullRequestNumber, body); err != nil {
		return result, err
	}

	return result, nil
}
