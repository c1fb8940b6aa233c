package sqlinline

const QInsertProfile = `--sql 8c1f4a02-6d3b-4e19-9a5c-f2b7d80c3e41
insert into user_profiles (
    id, name, age, weight, height, gender, goal, target_weight,
    activity_level, daily_calorie_goal, workouts_per_week, weight_goal,
    subscription_status, trial_start_date, created_at, updated_at
)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
returning id, name, age, weight, height, gender, goal, target_weight,
    activity_level, daily_calorie_goal, workouts_per_week, weight_goal,
    subscription_status, trial_start_date, created_at, updated_at;
`

const QSelectProfileByID = `--sql 3be90d77-12c4-44af-8e06-51a9c0d274b5
select id, name, age, weight, height, gender, goal, target_weight,
    activity_level, daily_calorie_goal, workouts_per_week, weight_goal,
    subscription_status, trial_start_date, created_at, updated_at
from user_profiles
where id = $1
limit 1;
`

const QUpdateProfile = `--sql e52a7c18-90fb-4bd3-a6e2-7d14f98b60cd
update user_profiles
set name = $2,
    age = $3,
    weight = $4,
    height = $5,
    target_weight = $6,
    activity_level = $7,
    daily_calorie_goal = $8,
    updated_at = now()
where id = $1
returning id, name, age, weight, height, gender, goal, target_weight,
    activity_level, daily_calorie_goal, workouts_per_week, weight_goal,
    subscription_status, trial_start_date, created_at, updated_at;
`

const QSetSubscriptionStatus = `--sql 6f08b2ce-47d1-4a90-b3ef-2c85e1a7d906
update user_profiles
set subscription_status = $2,
    updated_at = now()
where id = $1;
`

const QSelectCalorieGoal = `--sql 91d3e6af-25b8-4c07-ae94-d07f6c12b853
select daily_calorie_goal
from user_profiles
where id = $1
limit 1;
`
