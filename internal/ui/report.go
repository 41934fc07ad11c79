package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/sheaf/pkg/core"
)

// Banner prints a framed title.
func (p *Printer) Banner(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.render(p.banner, SeparatorHeavy))
	fmt.Fprintln(p.w, p.render(p.banner, "   "+title))
	fmt.Fprintln(p.w, p.render(p.banner, SeparatorHeavy))
	fmt.Fprintln(p.w)
}

// Step prints a numbered step line.
func (p *Printer) Step(n, total int, msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Warn(fmt.Sprintf("步骤 %d/%d:", n, total)), msg)
}

// Success prints a line with the pass icon.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Pass(IconPass), msg)
}

// Warning prints a line with the warn icon.
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Warn(IconWarn), msg)
}

// Info prints a line with the info icon.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Accent(IconInfo), msg)
}

// Error prints an error line.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.Fail("错误:"), err)
}

// Field prints a "label: value" line.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Bold(label+":"), value)
}

// Counters prints the scan summary counters.
func (p *Printer) Counters(r *core.Report) {
	fmt.Fprintln(p.w, p.Bold("扫描结果:"))
	fmt.Fprintf(p.w, "  - 总文件数: %s\n", p.Accent(fmt.Sprint(r.Total())))
	fmt.Fprintf(p.w, "  - 格式正确: %s\n", p.Pass(fmt.Sprint(len(r.Valid()))))
	fmt.Fprintf(p.w, "  - 格式错误: %s\n", p.Fail(fmt.Sprint(len(r.Invalid()))))
	fmt.Fprintf(p.w, "  - 有警告: %s\n\n", p.Warn(fmt.Sprint(len(r.WithWarnings()))))
}

// Problems lists invalid notes with their errors, then notes with warnings.
func (p *Printer) Problems(r *core.Report) {
	if invalid := r.Invalid(); len(invalid) > 0 {
		fmt.Fprintln(p.w, p.Fail("❌ 格式不符合要求的文件:"))
		fmt.Fprintln(p.w)
		p.listing(invalid, func(res core.Result) []string { return res.Errors }, p.Fail(IconFail))
	}
	if warned := r.WithWarnings(); len(warned) > 0 {
		fmt.Fprintln(p.w, p.Warn("⚠️  有警告的文件:"))
		fmt.Fprintln(p.w)
		p.listing(warned, func(res core.Result) []string { return res.Warnings }, p.Warn(IconWarn))
	}
}

func (p *Printer) listing(results []core.Result, msgs func(core.Result) []string, icon string) {
	for i, res := range results {
		fmt.Fprintln(p.w, p.Bold(fmt.Sprintf("%d. %s", i+1, res.File)))
		for _, m := range msgs(res) {
			fmt.Fprintf(p.w, "   %s %s\n", icon, m)
		}
		fmt.Fprintln(p.w)
	}
}

// IndexOutcome prints what happened to the index file.
func (p *Printer) IndexOutcome(r *core.Report) {
	switch {
	case !r.IndexWritten:
		if errors.Is(r.Skipped, core.ErrNoValidNotes) {
			p.Warning("没有格式正确的笔记，索引未更新")
		}
	case r.IndexChanged:
		p.Success("索引文件已更新")
		p.Field("路径", r.IndexPath)
	default:
		p.Info("索引文件无需更新（内容未变化）")
	}
	fmt.Fprintln(p.w)
}

// Summary prints the closing verdict of a scan.
func (p *Printer) Summary(r *core.Report) {
	invalid, warned := len(r.Invalid()), len(r.WithWarnings())

	fmt.Fprintln(p.w, p.render(p.banner, SeparatorHeavy))
	switch {
	case invalid == 0 && warned == 0:
		fmt.Fprintln(p.w, p.Pass(IconPass+" 所有笔记格式正确！"))
	case invalid == 0:
		fmt.Fprintln(p.w, p.Warn(fmt.Sprintf("%s 所有笔记可用，但有 %d 个警告", IconWarn, warned)))
	default:
		fmt.Fprintln(p.w, p.Fail(fmt.Sprintf("%s 发现 %d 个格式错误", IconFail, invalid)))
	}
	fmt.Fprintln(p.w, p.render(p.banner, SeparatorHeavy))
	fmt.Fprintln(p.w)
}

// Report prints counters, problems, the index outcome and the summary.
func (p *Printer) Report(r *core.Report) {
	p.Counters(r)
	p.Problems(r)
	p.IndexOutcome(r)
	p.Summary(r)
}

// Created prints the summary of a newly created note.
func (p *Printer) Created(c *core.Created) {
	fmt.Fprintln(p.w)
	p.Success("笔记创建成功！")
	p.Field("文件名", c.File)
	p.Field("路径", c.Path)
	p.Field("标签", strings.Join(c.Note.Tags, ", "))
	fmt.Fprintln(p.w)
}

// Notes prints one line per note.
func (p *Printer) Notes(notes []core.Note) {
	for _, n := range notes {
		tags := make([]string, len(n.Tags))
		for i, t := range n.Tags {
			tags[i] = p.Accent("#" + t)
		}
		fmt.Fprintf(p.w, "%s  %s  %s %s\n", p.Muted(n.Created), p.Bold(n.Title), p.Muted(n.File), strings.Join(tags, " "))
	}
}
