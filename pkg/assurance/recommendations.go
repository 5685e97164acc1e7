package assurance

import (
	"sort"
	"strings"
)

// Recommendation category names, fixed by the reporting format.
const (
	CategoryTesting     = "Testing Requirements"
	CategoryIFTD        = "IFTD Responsibilities"
	CategoryMaintenance = "Preventive Maintenance Actions"
	CategoryGuidelines  = "Relevant AVSC Guidelines"
	CategoryExtra       = "Extra Recommendations"
)

// Categories lists the fixed category names in report order.
func Categories() []string {
	return []string{
		CategoryTesting,
		CategoryIFTD,
		CategoryMaintenance,
		CategoryGuidelines,
		CategoryExtra,
	}
}

// Guidance holds the recommendation text for one assurance level.
// Extras is keyed by a lowercase keyword matched against node names
// and descriptions.
type Guidance struct {
	Testing     string
	IFTD        string
	Maintenance string
	Guidelines  string
	Extras      map[string]string
}

// Recommendations maps assurance levels to guidance text. It is an
// explicit configuration object passed into report generation, never
// process-wide state; callers may substitute their own tables.
type Recommendations struct {
	levels map[Level]Guidance
}

// NewRecommendations builds a table from explicit per-level guidance.
func NewRecommendations(levels map[Level]Guidance) *Recommendations {
	return &Recommendations{levels: levels}
}

// Guidance returns the guidance block for level, if present.
func (r *Recommendations) Guidance(level Level) (Guidance, bool) {
	g, ok := r.levels[level]
	return g, ok
}

// Category returns the named category's text for level. For
// CategoryExtra use MatchExtras instead.
func (r *Recommendations) Category(level Level, category string) (string, bool) {
	g, ok := r.levels[level]
	if !ok {
		return "", false
	}
	switch category {
	case CategoryTesting:
		return g.Testing, true
	case CategoryIFTD:
		return g.IFTD, true
	case CategoryMaintenance:
		return g.Maintenance, true
	case CategoryGuidelines:
		return g.Guidelines, true
	default:
		return "", false
	}
}

// MatchExtras returns the extra recommendations whose keyword occurs
// in text (case-insensitive substring), in stable keyword order.
func (r *Recommendations) MatchExtras(level Level, text string) []string {
	g, ok := r.levels[level]
	if !ok || len(g.Extras) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	keys := make([]string, 0, len(g.Extras))
	for k := range g.Extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []string
	for _, k := range keys {
		if strings.Contains(lower, k) {
			out = append(out, g.Extras[k])
		}
	}
	return out
}

// DefaultRecommendations returns the built-in automated-driving test
// guidance table covering levels 1 through 5.
func DefaultRecommendations() *Recommendations {
	return NewRecommendations(map[Level]Guidance{
		1: {
			Testing: "Perform extensive scenario-based simulations covering normal driving, sensor failures, " +
				"emergency braking, and boundary conditions. Conduct rigorous lab tests and closed-course trials " +
				"to verify core functions under ideal conditions. No public road tests are permitted until every " +
				"core function is validated in a controlled prototype environment.",
			IFTD: "A dedicated safety driver is in the vehicle at all times along with an engineer. The IFTD must " +
				"be able to take immediate manual control when abnormal conditions are detected. Training focuses " +
				"on short reaction times and situational awareness through frequent emergency takeover drills.",
			Maintenance: "Conduct pre-trip and post-trip inspections on every run. Regularly calibrate, clean, and " +
				"realign all sensors. Maintain a detailed log and perform daily component checks to address any " +
				"anomalies before further testing.",
			Guidelines: "Adhere to AVSC Best Practice for In-Vehicle Test Driver Selection, Training, and Oversight " +
				"(AVSC00001-2019) and SAE J3018 guidelines, with extra emphasis on ensuring the IFTD can safely " +
				"intervene in a prototype environment.",
			Extras: map[string]string{
				"steering": "Include operational tests that simulate sudden, unintended steering inputs and verify " +
					"that dynamic steering limiters are active. Ensure that the IFTD can promptly override any " +
					"abnormal steering commands.",
				"lateral": "Design tests to simulate faulty lateral control and verify that any deviation is " +
					"corrected within safe lateral boundaries through simulations, closed-course testing, and " +
					"silent mode testing.",
				"longitudinal": "Simulate sudden acceleration or deceleration events and verify that smooth speed " +
					"transitions are maintained, with unexpected longitudinal changes managed safely by the IFTD.",
				"braking": "Simulate unintended or excessive braking events on a closed course and verify that the " +
					"IFTD can quickly restore controlled braking and vehicle stability.",
				"deceleration": "Develop test scenarios where deceleration is either too abrupt or delayed, and " +
					"verify that intervention results in smooth, predictable slowdowns within defined limits.",
				"acceleration": "Test for unintended acceleration surges by simulating load changes and external " +
					"disturbances, verifying that the IFTD can promptly override acceleration commands.",
				"park brake": "Design controlled tests that trigger parking brake faults and verify that the " +
					"system engages and disengages reliably with the IFTD able to manage the vehicle safely.",
				"parking brake": "Conduct targeted tests simulating parking brake malfunctions, ensuring reliable " +
					"engagement and disengagement and safe IFTD intervention.",
				"mode": "Simulate mode indicator anomalies to verify that the IFTD receives clear, actionable " +
					"alerts and can enforce proper system state transitions.",
				"notification": "Verify that the alert system responds accurately to simulated sensor or system " +
					"errors, with alerts displayed clearly via visual and auditory cues and properly logged.",
				"takeover": "Simulate scenarios where the automation disengages unexpectedly, requiring the IFTD " +
					"to take over, and validate that manual control can be assumed quickly and safely.",
				"rollaway": "Conduct basic simulation tests to verify detection of a potential rollaway condition, " +
					"including emergency brake activation on a slight incline in a laboratory environment.",
				"control": "Assess the IFTD's basic manual override capability under simulated conditions, " +
					"confirming the driver can momentarily assume control in a laboratory environment.",
			},
		},
		2: {
			Testing: "Initiate limited public-road tests under tightly controlled conditions such as low speed, " +
				"daylight, and good weather within a constrained ODD. Employ advanced simulations including fault " +
				"injection and emergency braking alongside closed-course validations.",
			IFTD: "The safety driver continuously monitors the system and is ready to intervene immediately. " +
				"Training drills focus on rapid manual intervention and maintaining situational awareness under " +
				"varying test conditions.",
			Maintenance: "Implement both time-based and event-triggered inspections. Before each test, verify that " +
				"sensor calibrations and system integrity meet safety standards, documenting all findings and " +
				"addressing anomalies immediately.",
			Guidelines: "Follow AVSC Best Practice for Data Collection for ADS-DVs (AVSC00004-2020), comply with " +
				"SAE J3018, and meet local regulatory standards, with a focus on IFTD control and training.",
			Extras: map[string]string{
				"steering": "Design tests that simulate unexpected steering deviations and verify that the IFTD " +
					"can safely override these inputs across simulations, closed-course, and silent mode testing.",
				"lateral": "Simulate faulty lateral control scenarios to ensure that any drift or deviation is " +
					"corrected by the IFTD within safe lateral boundaries.",
				"longitudinal": "Incorporate scenarios that simulate sudden acceleration or deceleration events and " +
					"verify that the emergency override system maintains safe speed profiles.",
				"braking": "Include tests that simulate unintended or excessive braking events and verify that the " +
					"IFTD can quickly re-establish controlled braking.",
				"deceleration": "Develop test scenarios to confirm that deceleration remains controlled even when " +
					"slightly delayed or abrupt, with basic emergency intervention protocols activated.",
				"acceleration": "Test for unintended acceleration surges by simulating moderate load changes and " +
					"external disturbances, confirming the emergency override maintains safe speed profiles.",
				"park brake": "Conduct controlled tests simulating parking brake faults and verify that basic " +
					"safety protocols, such as system alerts and initial brake engagement, function properly.",
				"parking brake": "Conduct controlled tests simulating parking brake malfunctions and ensure that " +
					"the system engages protective measures reliably.",
				"mode": "Simulate mode indicator anomalies to verify that the IFTD receives clear alerts and can " +
					"trigger preliminary system checks.",
				"notification": "Test the alert system under controlled conditions to verify prompt and clear " +
					"notification of sensor or system errors.",
				"takeover": "Simulate scenarios where the automation unexpectedly disengages to ensure the IFTD " +
					"can assume manual control quickly.",
				"rollaway": "Perform controlled closed-course tests simulating a rollaway event on a mild slope, " +
					"validating emergency braking, transmission neutral, and prompt driver alerts.",
				"control": "Verify that the IFTD can take control during simple, low-speed scenarios with clear " +
					"override signals from the manual interface.",
			},
		},
		3: {
			Testing: "Expand testing into a broader ODD using high-fidelity simulations and extended on-road " +
				"trials, including higher speeds, nighttime driving, and light rain, with targeted fault-injection " +
				"tests verifying prompt IFTD intervention.",
			IFTD: "The safety driver remains onboard while the system handles most of the route. Enhanced training " +
				"emphasizes rapid manual takeover and precise interpretation of system signals, reinforced by " +
				"regular simulator and on-track drills.",
			Maintenance: "Establish a formal maintenance schedule combining regular and event-based inspections " +
				"supported by on-board diagnostics and predictive analytics, addressing component degradation " +
				"before it compromises intervention capability.",
			Guidelines: "Utilize AVSC Best Practice for Metrics and Methods for Assessing Safety Performance and " +
				"continuous monitoring principles. Ensure periodic IFTD re-training and adhere to ISO 26262/21448.",
			Extras: map[string]string{
				"steering": "Simulate abnormal steering responses and verify that the IFTD can override these " +
					"inputs safely across simulations, closed-course, and silent mode testing.",
				"lateral": "Develop test scenarios that replicate lateral control failures and verify that the " +
					"IFTD restores proper lateral stability within defined limits.",
				"longitudinal": "Design tests that simulate abrupt changes in speed and verify that manual " +
					"override maintains smooth acceleration and deceleration within preset control limits.",
				"braking": "Include tests for inconsistent braking responses and evaluate how quickly the IFTD " +
					"can re-establish controlled braking within safe limits.",
				"deceleration": "Test deceleration behavior under fault conditions, ensuring that even with " +
					"anomalies the deceleration remains predictable and controllable.",
				"acceleration": "Include scenarios that trigger unexpected acceleration surges and verify that " +
					"the IFTD can promptly intervene to restore safe speed levels.",
				"park brake": "Design tests that simulate parking brake faults and assess the IFTD's ability to " +
					"safely manage the vehicle until normal operation is restored.",
				"parking brake": "Design tests that simulate parking brake faults and assess the IFTD's ability " +
					"to safely manage the vehicle until normal operation is restored.",
				"mode": "Simulate mode indicator errors and confirm that the IFTD is alerted to enforce correct " +
					"system state transitions.",
				"notification": "During extended on-road trials, verify that the notification system integrates " +
					"with live sensor data to produce real alerts across visual and auditory channels, and assess " +
					"alert perception and reaction time.",
				"takeover": "Develop complex scenarios that require the IFTD to take over during fault conditions, " +
					"monitoring response time and conducting post-event analyses.",
				"rollaway": "Simulate a rollaway scenario on a declining grade under controlled conditions, " +
					"verifying that emergency braking, transmission neutralization, and stability controls engage " +
					"promptly with proper system logging.",
				"control": "Confirm that the IFTD consistently demonstrates the ability to assume control during " +
					"operational tests, with an intuitive override interface providing timely feedback.",
			},
		},
		4: {
			Testing: "Conduct pilot tests in a quasi-commercial setting on intended routes under realistic " +
				"conditions, exercising the full ODD including boundary scenarios through advanced simulations " +
				"and on-road trials.",
			IFTD: "An IFTD is onboard at all times as the ultimate safety net. Although interventions become less " +
				"frequent, the driver must remain vigilant and undergo regular drills and attention tests to " +
				"ensure sustained manual control readiness.",
			Maintenance: "Integrate comprehensive preventive maintenance into the test cycle. Perform extensive " +
				"pre-run system checks including HD map verification, sensor cleaning, and redundant system tests.",
			Guidelines: "Implement AVSC Best Practice for First Responder Interactions and adopt a standardized " +
				"Safety Inspection Framework, ensuring continuous monitoring and regulatory compliance with " +
				"emphasis on IFTD training and rapid intervention.",
			Extras: map[string]string{
				"steering": "Include operational tests verifying that unexpected steering deviations are safely " +
					"managed by the IFTD with control limits enforced.",
				"lateral": "Simulate faulty lateral control scenarios and verify that any drift or deviation is " +
					"corrected by the IFTD within safe lateral boundaries.",
				"longitudinal": "Design tests that simulate abrupt or erratic longitudinal events and verify that " +
					"manual override smoothly restores safe acceleration and deceleration.",
				"braking": "Conduct tests simulating unintended or excessive braking events and verify that the " +
					"IFTD can rapidly re-establish controlled braking with predictable deceleration.",
				"deceleration": "Include scenarios that ensure deceleration remains smooth and within safe limits " +
					"even under abnormal conditions, with timely IFTD intervention if needed.",
				"acceleration": "Test for unexpected acceleration surges and verify that the IFTD can safely " +
					"override to restore smooth acceleration within acceptable limits.",
				"park brake": "Perform targeted tests on parking brake engagement under fault conditions to verify " +
					"reliable operation within defined control limits.",
				"parking brake": "Perform targeted tests on parking brake engagement under fault conditions to " +
					"verify reliable operation within defined control limits.",
				"mode": "Simulate mode indicator anomalies and verify that the IFTD receives clear, actionable " +
					"alerts to enforce correct system state transitions.",
				"notification": "During pilot operations, validate that the notification system generates " +
					"real-time alerts for actual sensor malfunctions, using multiple modalities, and measure " +
					"alert perception, reaction time, and controllability.",
				"takeover": "Conduct pilot tests incorporating controlled takeover scenarios, measuring takeover " +
					"speed and transition stability to refine the mechanism and training protocols.",
				"rollaway": "Simulate a rollaway on a steeper decline with higher speeds, verifying advanced " +
					"emergency protocols including trailer locking and redundant braking work in tandem.",
				"control": "Ensure that the IFTD reliably assumes control in complex scenarios, with clear " +
					"override signals and demonstrated rapid response under challenging conditions.",
			},
		},
		5: {
			Testing: "Subject the system to rigorous edge-case validations and continuous simulation exercises " +
				"that safely challenge it across its entire ODD, deliberately triggering abnormal conditions so " +
				"control limits are enforced.",
			IFTD: "Even at the highest automation level, an IFTD is always onboard as a failsafe. Their role is " +
				"primarily supervisory, with continuous intensive training and periodic drills to ensure " +
				"immediate manual control if any fault occurs.",
			Maintenance: "Maintain standard commercial fleet maintenance protocols with automated self-checks and " +
				"condition-based preventive measures, including frequent sensor recalibration, hardware " +
				"diagnostics, and software integrity tests.",
			Guidelines: "Implement all applicable AVSC best practices including continuous monitoring, first " +
				"responder protocols, and transparency standards. Adhere to ANSI/UL 4600 and ISO 26262/21448 " +
				"while emphasizing rigorous IFTD training.",
			Extras: map[string]string{
				"steering": "Include operational tests verifying that dynamic steering limiters are active and " +
					"that the IFTD can safely intervene when steering inputs exceed defined control limits.",
				"lateral": "Design tests to simulate faulty lateral control and verify that any drift or " +
					"deviation is corrected by the IFTD within safe lateral boundaries.",
				"longitudinal": "Develop scenarios that test smooth manual override of acceleration and " +
					"deceleration controls, managing unexpected longitudinal changes within preset limits.",
				"braking": "Include test cases for unintended or excessive braking, confirming that the IFTD can " +
					"immediately assume control to restore safe braking within defined limits.",
				"deceleration": "Verify through operational tests that deceleration remains smooth and controlled " +
					"even when system signals are abnormal, with timely IFTD intervention.",
				"acceleration": "Include scenarios to detect and safely manage any unintended acceleration " +
					"surges, ensuring quick override to maintain smooth speed transitions.",
				"park brake": "Perform targeted tests on parking brake engagement under fault conditions to " +
					"ensure reliable performance within defined control limits.",
				"parking brake": "Perform targeted tests on parking brake engagement under fault conditions to " +
					"ensure reliable performance within defined control limits.",
				"mode": "Simulate mode indicator anomalies and verify that the IFTD receives clear, actionable " +
					"alerts while operational control limits are maintained.",
				"notification": "Under near-commercial conditions, monitor the alert system over extended periods " +
					"to ensure consistent real-time delivery across modalities, and quantify alert perception, " +
					"reaction time, and controllability.",
				"takeover": "Periodically simulate takeover events to ensure the system remains fail-safe, " +
					"measuring takeover speed, accuracy, and smoothness of transition.",
				"rollaway": "Conduct exhaustive tests under worst-case rollaway scenarios such as extended steep " +
					"grades combined with faults, ensuring all redundant systems engage seamlessly with full " +
					"logging for post-incident analysis.",
				"control": "Validate that the IFTD can seamlessly assume complete control even under worst-case " +
					"conditions, with robust override interfaces and redundant manual control mechanisms.",
			},
		},
	})
}
