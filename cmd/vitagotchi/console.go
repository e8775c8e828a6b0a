package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jwalitptl/vitagotchi/internal/calibration"
	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/internal/render"
	"github.com/jwalitptl/vitagotchi/internal/session"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

// console is the thin terminal front-end over the session engine. It
// owns presentation only; every decision lives in the engine.
type console struct {
	engine *session.Engine
	in     *bufio.Scanner
	out    io.Writer
	log    *logger.Logger
}

func newConsole(engine *session.Engine, in io.Reader, out io.Writer, log *logger.Logger) *console {
	return &console{
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
	}
}

func (c *console) Run() error {
	ctx := context.Background()
	c.printf("Welcome to Vitagotchi. Type 'help' for commands.\n")
	for {
		c.printf("[%s] > ", c.engine.Stage())
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := c.dispatch(ctx, cmd, args); err != nil {
			c.printf("! %s\n", err)
		}
	}
}

func (c *console) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		c.printHelp()
		return nil
	case "reset":
		c.engine.Reset()
		return nil
	case "new":
		return c.engine.NewPatient()
	case "login":
		return c.engine.Login()
	case "db":
		summaries, err := c.engine.BrowseDatabase(ctx)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			c.printf("%s  %-24s %-6s age %d\n", s.PatientID, s.Name, s.Sex, s.Age)
		}
		return nil
	case "history":
		if len(args) != 1 {
			return usageErr("history <patient-id>")
		}
		readings, err := c.engine.PatientHistory(ctx, args[0])
		if err != nil {
			return err
		}
		for _, r := range readings {
			c.printf("%s  hr=%s temp=%s bp=%s/%s\n", r.Timestamp, r.HeartRate, r.Temperature, r.Systolic, r.Diastolic)
		}
		return nil
	case "register":
		if len(args) != 6 {
			return usageErr("register <first> <last> <MM> <DD> <YYYY> <Male|Female>")
		}
		return c.engine.SubmitPatientInfo(ctx, session.PatientInfoForm{
			FirstName: args[0], LastName: args[1],
			Month: args[2], Day: args[3], Year: args[4],
			Sex: args[5],
		})
	case "head":
		if len(args) == 0 {
			return usageErr("head <part name>")
		}
		if err := c.engine.SelectHead(strings.Join(args, " ")); err != nil {
			return err
		}
		return c.preview()
	case "clothes":
		if len(args) == 0 {
			return usageErr("clothes <part name>")
		}
		if err := c.engine.SelectClothes(strings.Join(args, " ")); err != nil {
			return err
		}
		return c.preview()
	case "confirm":
		return c.engine.ConfirmAvatar(ctx)
	case "proceed":
		return c.engine.ProceedToVitals()
	case "find":
		if len(args) != 2 {
			return usageErr("find <first> <last>")
		}
		outcome, err := c.engine.SubmitLogin(ctx, session.LoginForm{FirstName: args[0], LastName: args[1]})
		if err != nil {
			return err
		}
		if outcome.NeedsBirthdate {
			c.printf("Multiple patients found (%d). Confirm with: dob <MM/DD/YYYY>\n", outcome.MatchCount)
		}
		return nil
	case "dob":
		if len(args) != 1 {
			return usageErr("dob <MM/DD/YYYY>")
		}
		return c.engine.ResolveTiebreaker(args[0])
	case "vitals":
		if len(args) != 4 {
			return usageErr("vitals <hr> <temp> <systolic> <diastolic>")
		}
		view, err := c.engine.SubmitVitals(ctx, session.VitalsForm{
			HeartRate: args[0], Temperature: args[1],
			Systolic: args[2], Diastolic: args[3],
		})
		if err != nil {
			return err
		}
		c.printStatus(view)
		return nil
	case "calib":
		if err := c.engine.ToggleCalibration(); err != nil {
			return err
		}
		c.printCalib()
		return c.redraw()
	case "target":
		if len(args) != 1 {
			return usageErr("target <head|clothes>")
		}
		if err := c.engine.SelectCalibrationTarget(model.PartType(args[0])); err != nil {
			return err
		}
		c.printCalib()
		return nil
	case "move":
		if len(args) != 2 {
			return usageErr("move <dx> <dy>")
		}
		dx, errX := strconv.ParseFloat(args[0], 64)
		dy, errY := strconv.ParseFloat(args[1], 64)
		if errX != nil || errY != nil {
			return usageErr("move <dx> <dy>")
		}
		// A console has no pointer; synthesize a one-step drag.
		c.engine.CalibrationBeginDrag(model.Position{}, nil)
		c.engine.CalibrationDrag(model.Position{X: dx, Y: dy})
		c.engine.CalibrationEndDrag()
		c.printCalib()
		return c.redraw()
	case "scale":
		if len(args) != 1 || (args[0] != "up" && args[0] != "down") {
			return usageErr("scale <up|down>")
		}
		dir := calibration.ScaleUp
		if args[0] == "down" {
			dir = calibration.ScaleDown
		}
		c.engine.CalibrationStepScale(dir)
		c.printCalib()
		return c.redraw()
	}
	return fmt.Errorf("unknown command %q, try 'help'", cmd)
}

func (c *console) preview() error {
	scene, err := c.engine.RenderPreview()
	if err != nil {
		return err
	}
	c.printScene(scene)
	return nil
}

// redraw refreshes whichever avatar surface is visible after a
// calibration edit.
func (c *console) redraw() error {
	switch c.engine.Stage() {
	case model.StageAvatar:
		return c.preview()
	case model.StageStatus:
		view, err := c.engine.RenderStatus()
		if err != nil {
			return err
		}
		c.printScene(view.Scene)
		return nil
	}
	return nil
}

func (c *console) printScene(scene render.Scene) {
	for _, ins := range scene {
		c.printf("draw %-7s %-10q file=%s at (%.1f, %.1f) scale=%.3f z=%d\n",
			ins.Part, ins.Name, ins.File, ins.Pos.X, ins.Pos.Y, ins.Scale, ins.Z)
	}
}

func (c *console) printStatus(view *session.StatusView) {
	c.printf("Name: %s\nAge: %d\nSex: %s\nPatient ID: %s\n", view.Name, view.Age, view.Sex, view.PatientID)
	c.printf("Status: %s\n%s\n", view.Tier, view.Message)
	c.printScene(view.Scene)
}

func (c *console) printCalib() {
	if !c.engine.CalibrationActive() {
		c.printf("calibration off\n")
		return
	}
	snap := c.engine.CalibrationSnapshot()
	target := string(snap.Target)
	if target == "" {
		target = "none"
	}
	c.printf("calibration on, target=%s\n", target)
	c.printf("  head    (%.1f, %.1f) scale %.3f\n", snap.Head.Pos.X, snap.Head.Pos.Y, snap.Head.Scale)
	if snap.State == calibration.ActiveBuild {
		c.printf("  clothes (%.1f, %.1f) scale %.3f\n", snap.Clothes.Pos.X, snap.Clothes.Pos.Y, snap.Clothes.Scale)
	} else {
		c.printf("  expression %s\n", snap.ReviewExpression)
	}
}

func (c *console) printHelp() {
	c.printf(`Commands by screen:
  Welcome:      new | login | db
  PatientInfo:  register <first> <last> <MM> <DD> <YYYY> <Male|Female>
  Avatar:       head <name> | clothes <name> | confirm | calib | target <part> | move <dx> <dy> | scale <up|down>
  Congrats:     proceed
  Login:        find <first> <last> | dob <MM/DD/YYYY>
  Vitals:       vitals <hr> <temp> <systolic> <diastolic>
  Status:       calib | target head | move <dx> <dy> | scale <up|down>
  DatabaseView: history <patient-id>
  Anywhere:     reset | help | quit
`)
}

func (c *console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func usageErr(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}
