package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"examtrack/internal/bootstrap"
	reviewdto "examtrack/internal/modules/review/dto"
	scoresdto "examtrack/internal/modules/scores/dto"
	settingsdto "examtrack/internal/modules/settings/dto"
	"examtrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "examtrack",
		Short:         "Exam preparation tracker with spaced repetition",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newStudyCmd(&dataDir))
	root.AddCommand(newReviewCmd(&dataDir))
	root.AddCommand(newSyllabusCmd(&dataDir))
	root.AddCommand(newScoreCmd(&dataDir))
	root.AddCommand(newPDFCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newCountdownCmd(&dataDir))
	root.AddCommand(newDataCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// run opens the app for a single command and closes it afterwards.
func run(dataDir string, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(context.Background(), app)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the review dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(*dataDir, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(app)
			})
		},
	}
}

// ─── study / review ──────────────────────────────────────────────────────────

func newStudyCmd(dataDir *string) *cobra.Command {
	study := &cobra.Command{Use: "study", Short: "Record study sessions"}

	var subject, chapter, topic, difficulty, notes string
	add := &cobra.Command{
		Use:   "add --subject <s> --chapter <id> --topic <id>",
		Short: "Record a study session and schedule its reviews",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ReviewCLI.AddStudy(ctx, subject, chapter, topic, difficulty, notes)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "recorded %s (%s) at %s\n", out.TopicID, out.EventID, out.CreatedAt.Format("2006-01-02 15:04"))
				printTasks(w, out.Tasks)
				return nil
			})
		},
	}
	add.Flags().StringVar(&subject, "subject", "", "Physics|Chemistry|Biology")
	add.Flags().StringVar(&chapter, "chapter", "", "chapter id")
	add.Flags().StringVar(&topic, "topic", "", "topic id")
	add.Flags().StringVar(&difficulty, "difficulty", "", "Easy|Medium|Hard (defaults to the syllabus value)")
	add.Flags().StringVar(&notes, "notes", "", "free-form notes")

	study.AddCommand(add)
	return study
}

func newReviewCmd(dataDir *string) *cobra.Command {
	review := &cobra.Command{Use: "review", Short: "Review queue"}

	listCmd := func(use, short string, fetch func(context.Context, *bootstrap.App) ([]reviewdto.TaskOutput, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
					tasks, err := fetch(ctx, app)
					if err != nil {
						return err
					}
					printTasks(cmd.OutOrStdout(), tasks)
					return nil
				})
			},
		}
	}

	review.AddCommand(listCmd("today", "Incomplete reviews due today or overdue", func(ctx context.Context, app *bootstrap.App) ([]reviewdto.TaskOutput, error) {
		return app.ReviewCLI.Today(ctx)
	}))
	review.AddCommand(listCmd("overdue", "Incomplete reviews past due", func(ctx context.Context, app *bootstrap.App) ([]reviewdto.TaskOutput, error) {
		return app.ReviewCLI.Overdue(ctx)
	}))

	var upcomingDays int
	upcoming := listCmd("upcoming", "Reviews due after today within a window", func(ctx context.Context, app *bootstrap.App) ([]reviewdto.TaskOutput, error) {
		return app.ReviewCLI.Upcoming(ctx, upcomingDays)
	})
	upcoming.Flags().IntVar(&upcomingDays, "days", 0, "window in days (0 uses the configured default)")
	review.AddCommand(upcoming)

	topic := &cobra.Command{
		Use:   "topic <topic-key>",
		Short: "All reviews for one topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				tasks, err := app.ReviewCLI.ForTopic(ctx, args[0])
				if err != nil {
					return err
				}
				printTasks(cmd.OutOrStdout(), tasks)
				return nil
			})
		},
	}
	review.AddCommand(topic)

	change := func(use, short, verb string, apply func(context.Context, *bootstrap.App, string) (reviewdto.ChangeOutput, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
					out, err := apply(ctx, app, args[0])
					if err != nil {
						return err
					}
					if !out.Changed {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: nothing to change\n", out.TaskID)
						return nil
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, out.TaskID)
					return nil
				})
			},
		}
	}

	review.AddCommand(change("complete <task-id>", "Mark a review done", "completed", func(ctx context.Context, app *bootstrap.App, id string) (reviewdto.ChangeOutput, error) {
		return app.ReviewCLI.Complete(ctx, id)
	}))
	review.AddCommand(change("remove <task-id>", "Delete a review", "removed", func(ctx context.Context, app *bootstrap.App, id string) (reviewdto.ChangeOutput, error) {
		return app.ReviewCLI.Remove(ctx, id)
	}))

	var snoozeDays int
	snooze := change("snooze <task-id>", "Push a review back by whole days", "snoozed", func(ctx context.Context, app *bootstrap.App, id string) (reviewdto.ChangeOutput, error) {
		return app.ReviewCLI.Snooze(ctx, id, snoozeDays)
	})
	snooze.Flags().IntVar(&snoozeDays, "days", 1, "days to postpone")
	review.AddCommand(snooze)

	review.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Queue counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.ReviewCLI.Summary(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "due today: %d\noverdue: %d\nupcoming (%dd): %d\ncompleted: %d/%d\nsessions: %d\n",
					s.DueToday, s.Overdue, s.UpcomingDays, s.Upcoming, s.Completed, s.Total, s.Events)
				return nil
			})
		},
	})

	var forecastDays int
	forecast := &cobra.Command{
		Use:   "forecast",
		Short: "Reviews due per day starting tomorrow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				days, err := app.ReviewCLI.Forecast(ctx, forecastDays)
				if err != nil {
					return err
				}
				for _, d := range days {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", d.Day.Format("Mon 2006-01-02"), d.Count)
				}
				return nil
			})
		},
	}
	forecast.Flags().IntVar(&forecastDays, "days", 14, "number of days")
	review.AddCommand(forecast)
	return review
}

func printTasks(w io.Writer, tasks []reviewdto.TaskOutput) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "no reviews")
		return
	}
	for _, t := range tasks {
		state := ""
		switch {
		case t.DoneAt != nil:
			state = "done"
		case t.DaysOverdue > 0:
			state = fmt.Sprintf("overdue %dd", t.DaysOverdue)
		case t.Overdue:
			state = "overdue"
		case t.DueToday:
			state = "today"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.DueAt.Format("2006-01-02 15:04"), t.TopicID, t.Difficulty, state)
	}
}

// ─── syllabus ────────────────────────────────────────────────────────────────

func newSyllabusCmd(dataDir *string) *cobra.Command {
	syllabus := &cobra.Command{Use: "syllabus", Short: "Syllabus tree"}

	var search, subject, difficulty string
	list := &cobra.Command{
		Use:   "list",
		Short: "Show the syllabus, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				subjects, err := app.SyllabusCLI.List(ctx, search, subject, difficulty)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(subjects) == 0 {
					_, _ = fmt.Fprintln(w, "no matching topics")
					return nil
				}
				for _, s := range subjects {
					_, _ = fmt.Fprintln(w, s.Subject)
					for _, c := range s.Chapters {
						mark := ""
						if c.Complete {
							mark = " ✓"
						}
						_, _ = fmt.Fprintf(w, "  %s  %s [%s]%s\n", c.ID, c.Name, c.Difficulty, mark)
						for _, t := range c.Topics {
							_, _ = fmt.Fprintf(w, "    %s  %s [%s] %s\n", t.ID, t.Name, t.Difficulty, t.Status)
						}
					}
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&search, "search", "", "case-insensitive text match")
	list.Flags().StringVar(&subject, "subject", "", "subject filter")
	list.Flags().StringVar(&difficulty, "difficulty", "", "difficulty filter")
	syllabus.AddCommand(list)

	var chSubject, chName, chDifficulty string
	addChapter := &cobra.Command{
		Use:   "add-chapter",
		Short: "Add a chapter to a subject",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SyllabusCLI.AddChapter(ctx, chSubject, chName, chDifficulty)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added chapter %s (%s)\n", out.Name, out.ID)
				return nil
			})
		},
	}
	addChapter.Flags().StringVar(&chSubject, "subject", "", "Physics|Chemistry|Biology")
	addChapter.Flags().StringVar(&chName, "name", "", "chapter name")
	addChapter.Flags().StringVar(&chDifficulty, "difficulty", "Medium", "Easy|Medium|Hard")
	syllabus.AddCommand(addChapter)

	var tpSubject, tpChapter, tpName, tpDifficulty string
	addTopic := &cobra.Command{
		Use:   "add-topic",
		Short: "Add a topic to a chapter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SyllabusCLI.AddTopic(ctx, tpSubject, tpChapter, tpName, tpDifficulty)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added topic %s (%s) to %s\n", out.Name, out.ID, out.ChapterID)
				return nil
			})
		},
	}
	addTopic.Flags().StringVar(&tpSubject, "subject", "", "Physics|Chemistry|Biology")
	addTopic.Flags().StringVar(&tpChapter, "chapter", "", "chapter id")
	addTopic.Flags().StringVar(&tpName, "name", "", "topic name")
	addTopic.Flags().StringVar(&tpDifficulty, "difficulty", "Medium", "Easy|Medium|Hard")
	syllabus.AddCommand(addTopic)

	var rmSubject, rmChapter, rmTopic string
	removeChapter := &cobra.Command{
		Use:   "remove-chapter",
		Short: "Delete a chapter and its topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SyllabusCLI.RemoveChapter(ctx, rmSubject, rmChapter); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed chapter %s\n", rmChapter)
				return nil
			})
		},
	}
	removeChapter.Flags().StringVar(&rmSubject, "subject", "", "subject")
	removeChapter.Flags().StringVar(&rmChapter, "chapter", "", "chapter id")
	syllabus.AddCommand(removeChapter)

	removeTopic := &cobra.Command{
		Use:   "remove-topic",
		Short: "Delete a topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SyllabusCLI.RemoveTopic(ctx, rmSubject, rmChapter, rmTopic); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed topic %s\n", rmTopic)
				return nil
			})
		},
	}
	removeTopic.Flags().StringVar(&rmSubject, "subject", "", "subject")
	removeTopic.Flags().StringVar(&rmChapter, "chapter", "", "chapter id")
	removeTopic.Flags().StringVar(&rmTopic, "topic", "", "topic id")
	syllabus.AddCommand(removeTopic)

	var stSubject, stChapter, stTopic string
	status := &cobra.Command{
		Use:   "status <not-started|in-progress|completed>",
		Short: "Set a topic's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SyllabusCLI.SetStatus(ctx, stSubject, stChapter, stTopic, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", stTopic, args[0])
				return nil
			})
		},
	}
	status.Flags().StringVar(&stSubject, "subject", "", "subject")
	status.Flags().StringVar(&stChapter, "chapter", "", "chapter id")
	status.Flags().StringVar(&stTopic, "topic", "", "topic id")
	syllabus.AddCommand(status)

	syllabus.AddCommand(&cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Replace the syllabus with a YAML seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				subjects, err := app.SyllabusCLI.Import(ctx, args[0])
				if err != nil {
					return err
				}
				chapters := 0
				for _, s := range subjects {
					chapters += len(s.Chapters)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d subjects, %d chapters\n", len(subjects), chapters)
				return nil
			})
		},
	})

	syllabus.AddCommand(&cobra.Command{
		Use:   "progress",
		Short: "Completion per subject",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.SyllabusCLI.Progress(ctx)
				if err != nil {
					return err
				}
				for _, p := range rows {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tchapters %d/%d\ttopics %d/%d\n",
						p.Subject, p.CompletedChapters, p.Chapters, p.CompletedTopics, p.Topics)
				}
				return nil
			})
		},
	})
	return syllabus
}

// ─── scores ──────────────────────────────────────────────────────────────────

type scoreFlags struct {
	date, source                string
	duration                    int
	overall, max                float64
	physics, chemistry, biology float64
}

func (f *scoreFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "test date YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&f.source, "source", "", "test series or paper")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "minutes taken")
	cmd.Flags().Float64Var(&f.overall, "score", 0, "overall score")
	cmd.Flags().Float64Var(&f.max, "max", 720, "maximum overall score")
	cmd.Flags().Float64Var(&f.physics, "physics", 0, "physics score")
	cmd.Flags().Float64Var(&f.chemistry, "chemistry", 0, "chemistry score")
	cmd.Flags().Float64Var(&f.biology, "biology", 0, "biology score")
}

// changed returns a pointer to v only when the flag was given.
func changed[T any](cmd *cobra.Command, name string, v T) *T {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func newScoreCmd(dataDir *string) *cobra.Command {
	score := &cobra.Command{Use: "score", Short: "Mock test scores"}

	var addFlags scoreFlags
	add := &cobra.Command{
		Use:   "add --score <n>",
		Short: "Record a test result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ScoresCLI.Add(ctx, scoresdto.AddInput{
					Date:           addFlags.date,
					Source:         addFlags.source,
					DurationMin:    addFlags.duration,
					ScoreOverall:   addFlags.overall,
					MaxOverall:     addFlags.max,
					ScorePhysics:   changed(cmd, "physics", addFlags.physics),
					ScoreChemistry: changed(cmd, "chemistry", addFlags.chemistry),
					ScoreBiology:   changed(cmd, "biology", addFlags.biology),
				})
				if err != nil {
					return err
				}
				printEntry(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	addFlags.bind(add)
	score.AddCommand(add)

	var updFlags scoreFlags
	update := &cobra.Command{
		Use:   "update <entry-id>",
		Short: "Change fields of a test result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ScoresCLI.Update(ctx, scoresdto.UpdateInput{
					ID:             args[0],
					Date:           updFlags.date,
					Source:         changed(cmd, "source", updFlags.source),
					DurationMin:    changed(cmd, "duration", updFlags.duration),
					ScoreOverall:   changed(cmd, "score", updFlags.overall),
					MaxOverall:     changed(cmd, "max", updFlags.max),
					ScorePhysics:   changed(cmd, "physics", updFlags.physics),
					ScoreChemistry: changed(cmd, "chemistry", updFlags.chemistry),
					ScoreBiology:   changed(cmd, "biology", updFlags.biology),
				})
				if err != nil {
					return err
				}
				printEntry(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	updFlags.bind(update)
	score.AddCommand(update)

	score.AddCommand(&cobra.Command{
		Use:   "remove <entry-id>",
		Short: "Delete a test result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ScoresCLI.Remove(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	})

	var listDays int
	list := &cobra.Command{
		Use:   "list",
		Short: "Test results, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				entries, err := app.ScoresCLI.List(ctx, listDays)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no test entries")
					return nil
				}
				for _, e := range entries {
					printEntry(cmd.OutOrStdout(), e)
				}
				return nil
			})
		},
	}
	list.Flags().IntVar(&listDays, "days", 0, "only the last N days (0 lists everything)")
	score.AddCommand(list)

	var statsDays int
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Average score and subject performance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.ScoresCLI.Stats(ctx, statsDays)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "last %d days: %d tests, average %.1f\n", s.Days, s.Recent, s.Average)
				for _, sub := range s.Subjects {
					_, _ = fmt.Fprintf(w, "%s\t%.1f%%\t(%d tests)\n", sub.Subject, sub.Average, sub.Count)
				}
				return nil
			})
		},
	}
	stats.Flags().IntVar(&statsDays, "days", 30, "window for the average")
	score.AddCommand(stats)
	return score
}

func printEntry(w io.Writer, e scoresdto.EntryOutput) {
	_, _ = fmt.Fprintf(w, "%s\t%s\t%.0f/%.0f (%.1f%%)\t%s\n", e.ID, e.Date.Format(scoresdto.DateLayout), e.ScoreOverall, e.MaxOverall, e.Percent, e.Source)
}

// ─── pdf library ─────────────────────────────────────────────────────────────

func newPDFCmd(dataDir *string) *cobra.Command {
	pdf := &cobra.Command{Use: "pdf", Short: "PDF library"}

	var subject, folder string
	var tags []string
	add := &cobra.Command{
		Use:   "add <path>",
		Short: "Register a local PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.LibraryCLI.Add(ctx, args[0], subject, folder, tags)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) %s pages=%d\n", out.Name, out.ID, humanize.Bytes(uint64(out.Size)), out.Pages)
				return nil
			})
		},
	}
	add.Flags().StringVar(&subject, "subject", "", "Physics|Chemistry|Biology")
	add.Flags().StringVar(&folder, "folder", "", "folder label")
	add.Flags().StringSliceVar(&tags, "tags", nil, "tags")
	pdf.AddCommand(add)

	var listSubject, search string
	var listTags []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List PDFs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				files, err := app.LibraryCLI.List(ctx, listSubject, search, listTags)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no files")
					return nil
				}
				for _, f := range files {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s/%s\t%dp\t%s\t%s\n", f.ID, f.Subject, f.Folder, f.Name, f.Pages, humanize.Bytes(uint64(f.Size)), strings.Join(f.Tags, ","))
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&listSubject, "subject", "", "subject filter")
	list.Flags().StringVar(&search, "search", "", "name or tag match")
	list.Flags().StringSliceVar(&listTags, "tags", nil, "require all tags")
	pdf.AddCommand(list)

	pdf.AddCommand(&cobra.Command{
		Use:   "remove <file-id>",
		Short: "Forget a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.LibraryCLI.Remove(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	})

	pdf.AddCommand(&cobra.Command{
		Use:   "tag <file-id> [tags...]",
		Short: "Replace a PDF's tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.LibraryCLI.Tag(ctx, args[0], args[1:]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tagged %s\n", args[0])
				return nil
			})
		},
	})

	pdf.AddCommand(&cobra.Command{
		Use:   "tags",
		Short: "Every tag in use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				tags, err := app.LibraryCLI.Tags(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, "\n"))
				return nil
			})
		},
	})

	var page int
	read := &cobra.Command{
		Use:   "read <file-id>",
		Short: "Print the text of one page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.LibraryCLI.Read(ctx, args[0], page)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s page=%d/%d\n%s\n", out.Name, out.Page, out.Total, out.Text)
				return nil
			})
		},
	}
	read.Flags().IntVar(&page, "page", 1, "page number")
	pdf.AddCommand(read)

	pdf.AddCommand(&cobra.Command{
		Use:   "open <file-id>",
		Short: "Open a PDF in the system viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.LibraryCLI.Open(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", out.Target)
				return nil
			})
		},
	})
	return pdf
}

// ─── settings / countdown ────────────────────────────────────────────────────

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.SettingsCLI.Get(ctx)
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), s)
				return nil
			})
		},
	})

	var target, themeName string
	var compact bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.SettingsCLI.Update(ctx, settingsdto.UpdateInput{
					TargetDate: target,
					Theme:      changed(cmd, "theme", themeName),
					Compact:    changed(cmd, "compact", compact),
				})
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
	set.Flags().StringVar(&target, "target", "", "exam date, RFC 3339")
	set.Flags().StringVar(&themeName, "theme", "", "light|dark")
	set.Flags().BoolVar(&compact, "compact", false, "compact dashboard")
	settings.AddCommand(set)
	return settings
}

func printSettings(w io.Writer, s settingsdto.SettingsOutput) {
	_, _ = fmt.Fprintf(w, "target: %s\ntheme: %s\ncompact: %t\n", s.TargetDate.Format("2006-01-02T15:04:05Z07:00"), s.Theme, s.Compact)
}

func newCountdownCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "countdown",
		Short: "Time left until the exam",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				c, err := app.SettingsCLI.Countdown(ctx)
				if err != nil {
					return err
				}
				if c.Passed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exam date %s has passed\n", c.TargetDate.Format("2006-01-02"))
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%dd %dh %dm until %s\n", c.Days, c.Hours, c.Minutes, c.TargetDate.Format("2006-01-02 15:04 MST"))
				return nil
			})
		},
	}
}

// ─── data ────────────────────────────────────────────────────────────────────

func newDataCmd(dataDir *string) *cobra.Command {
	data := &cobra.Command{Use: "data", Short: "Backup and reset"}

	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write every collection to a JSON backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				path := out
				if path == "" {
					path = app.BackupCLI.DefaultFileName()
				}
				if path == "-" {
					res, err := app.BackupCLI.Export(ctx, "")
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(res.Document))
					return nil
				}
				res, err := app.BackupCLI.Export(ctx, path)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", res.Path)
				return nil
			})
		},
	}
	export.Flags().StringVar(&out, "out", "", `output file ("-" for stdout, default examtrack-backup-<date>.json)`)
	data.AddCommand(export)

	data.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Overwrite collections present in a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				res, err := app.BackupCLI.Import(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", strings.Join(res.Keys, ", "))
				return nil
			})
		},
	})

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear --yes",
		Short: "Delete all stored data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if !yes {
					return fmt.Errorf("refusing to clear without --yes")
				}
				if err := app.BackupCLI.Clear(ctx, yes); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	data.AddCommand(clearCmd)
	return data
}
