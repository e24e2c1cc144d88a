package main

import (
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

func stageLabel(stage modding.Stage) string {
	msg := i18n.I18nMsg.Modding
	switch stage {
	case modding.StageExtract:
		return msg.StageExtract
	case modding.StageStaging:
		return msg.StageStaging
	case modding.StagePacking:
		return msg.StagePacking
	case modding.StageMoving:
		return msg.StageMoving
	}
	return string(stage)
}

// attachProgress installs mpb bars on the manager when --progress is set.
// The returned function must be called once the run is over.
func attachProgress(m *modding.Manager) func() {
	if !showProgress {
		return func() {}
	}

	progress := mpb.New(mpb.WithWidth(60))
	bars := make(map[modding.Stage]*mpb.Bar)
	var barsMu sync.Mutex

	m.SetProgressCallback(func(pi modding.ProgressInfo) {
		barsMu.Lock()
		defer barsMu.Unlock()

		bar, ok := bars[pi.Stage]
		if !ok {
			if pi.Total == 0 {
				return
			}
			bar = progress.AddBar(int64(pi.Total),
				mpb.PrependDecorators(
					decor.Name(stageLabel(pi.Stage), decor.WCSyncSpaceR),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
					decor.Counters(0, " | %d/%d"),
					decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
				),
			)
			bars[pi.Stage] = bar
		}

		if delta := int64(pi.Completed) - bar.Current(); delta > 0 {
			bar.IncrInt64(delta)
		}
	})

	return func() {
		m.SetProgressCallback(nil)
		barsMu.Lock()
		for _, bar := range bars {
			if !bar.Completed() {
				bar.Abort(false)
			}
		}
		barsMu.Unlock()
		progress.Wait()
	}
}
